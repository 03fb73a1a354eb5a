// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import (
	"fmt"
	"time"
)

// SunnahTimes divides the night between Maghrib and the next Fajr.
type SunnahTimes struct {
	MiddleOfTheNight    time.Time `json:"middle_of_the_night" yaml:"middle_of_the_night"`
	LastThirdOfTheNight time.Time `json:"last_third_of_the_night" yaml:"last_third_of_the_night"`
}

// NewSunnahTimes computes the night divisions following times, using the next day's
// Fajr for the same coordinates and parameters.
func NewSunnahTimes(times Times) (SunnahTimes, error) {
	tomorrow, err := Compute(times.Coordinates, times.Date.AddDate(0, 0, 1), times.Params)
	if err != nil {
		return SunnahTimes{}, err
	}

	return SunnahTimesBetween(times, tomorrow)
}

// SunnahTimesBetween divides the night from today's Maghrib to tomorrow's Fajr. It
// lets callers that already hold tomorrow's times skip a calculation.
func SunnahTimesBetween(today, tomorrow Times) (SunnahTimes, error) {
	if !tomorrow.Date.Equal(today.Date.AddDate(0, 0, 1)) {
		return SunnahTimes{}, fmt.Errorf("%w: %s does not follow %s", ErrInvalidInput,
			tomorrow.Date.Format(time.DateOnly), today.Date.Format(time.DateOnly))
	}

	night := tomorrow.Fajr.Sub(today.Maghrib)
	return SunnahTimes{
		MiddleOfTheNight:    today.Maghrib.Add(night / 2).Round(time.Minute),
		LastThirdOfTheNight: today.Maghrib.Add(night * 2 / 3).Round(time.Minute),
	}, nil
}
