// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/GetSky/SalahTracker/internal/application"
)

type twilightService struct {
}

func NewTwilightService() application.TwilightService {
	return &twilightService{}
}

func (n *twilightService) Twilight(city application.City, date time.Time) (application.Twilight, error) {
	// Noon UTC of the civil date keeps suncalc on the right solar day for any offset.
	y, m, d := date.Date()
	ref := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)

	times := suncalc.GetTimesWithObserver(
		ref,
		suncalc.Observer{
			Latitude:  city.Coordinates.Latitude,
			Longitude: city.Coordinates.Longitude,
			Location:  time.UTC,
		},
	)

	return application.Twilight{
		NauticalDawn: n.calc(times[suncalc.NauticalDawn].Value, ref),
		CivilDawn:    n.calc(times[suncalc.Dawn].Value, ref),
		CivilDusk:    n.calc(times[suncalc.Dusk].Value, ref),
		NauticalDusk: n.calc(times[suncalc.NauticalDusk].Value, ref),
	}, nil
}

// calc returns the event truncated to the minute, or zero when the sun never
// reaches the depression and suncalc yields an undefined instant.
func (n *twilightService) calc(event time.Time, ref time.Time) time.Time {
	if event.IsZero() {
		return time.Time{}
	}
	if diff := event.Sub(ref); diff <= -24*time.Hour || diff >= 24*time.Hour {
		return time.Time{}
	}
	return event.UTC().Truncate(time.Minute)
}
