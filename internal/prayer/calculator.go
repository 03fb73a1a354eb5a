// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import (
	"math"
	"time"

	"github.com/GetSky/SalahTracker/internal/ephemeris"
)

// Compute returns the prayer times at coords for the civil date of date, read in
// date's own location. Every returned instant is in UTC.
func Compute(coords Coordinates, date time.Time, params Params) (Times, error) {
	if err := coords.Validate(); err != nil {
		return Times{}, err
	}
	if err := params.Validate(); err != nil {
		return Times{}, err
	}

	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	jd0 := ephemeris.JulianDay(y, m, d)
	memo := ephemeris.NewMemo()

	var adjusted HighLatitudeAdjustment
	latitude := coords.Latitude
	sk, ok := newSkeleton(memo, jd0, latitude, coords.Longitude, params.Madhab.ShadowFactor())
	for !ok && latitude != 0 {
		adjusted |= AdjustedLatitude
		if math.Abs(latitude) <= LatitudeStep {
			latitude = 0
		} else {
			latitude -= math.Copysign(LatitudeStep, latitude)
		}
		sk, ok = newSkeleton(memo, jd0, latitude, coords.Longitude, params.Madhab.ShadowFactor())
	}

	night := sk.night()

	fajr, ok := sk.day.event(fixedAltitude(-params.FajrAngle), -1)
	if safe := sk.sunrise - params.HighLatitudeRule.portion(params.FajrAngle)*night; !ok || safe > fajr {
		fajr = safe
		adjusted |= AdjustedFajr
	}

	var isha float64
	if params.IshaInterval > 0 {
		isha = sk.sunset + float64(params.IshaInterval)/60
	} else {
		isha, ok = sk.day.event(fixedAltitude(-params.IshaAngle), 1)
		if safe := sk.sunset + params.HighLatitudeRule.portion(params.IshaAngle)*night; !ok || safe < isha {
			isha = safe
			adjusted |= AdjustedIsha
		}
	}

	maghrib := sk.sunset
	if params.MaghribAngle > 0 {
		if t, ok := sk.day.event(fixedAltitude(-params.MaghribAngle), 1); ok && t > sk.sunset && t < isha {
			maghrib = t
		}
	}

	adj := params.MethodAdjustments.plus(params.Adjustments)
	at := func(hours float64, minutes int) time.Time {
		t := midnight.Add(time.Duration((hours + float64(minutes)/60) * float64(time.Hour)))
		return round(t, params.Rounding)
	}

	times := Times{
		Fajr:    at(fajr, adj.Fajr),
		Sunrise: at(sk.sunrise, adj.Sunrise),
		Dhuhr:   at(sk.day.transit, adj.Dhuhr),
		Asr:     at(sk.asr, adj.Asr),
		Maghrib: at(maghrib, adj.Maghrib),
		Isha:    at(isha, adj.Isha),

		Date:              midnight,
		Coordinates:       coords,
		Params:            params,
		EffectiveLatitude: latitude,
		Adjusted:          adjusted,
	}
	keepOrder(&times)
	return times, nil
}

// keepOrder separates instants that a short night, rounding or minute adjustments
// pushed together or past each other. Fajr moves back from Sunrise, the rest move
// forward from their predecessor.
func keepOrder(t *Times) {
	if !t.Fajr.Before(t.Sunrise) {
		t.Fajr = t.Sunrise.Add(-time.Minute)
	}
	seq := []*time.Time{&t.Sunrise, &t.Dhuhr, &t.Asr, &t.Maghrib, &t.Isha}
	for i := 1; i < len(seq); i++ {
		if !seq[i].After(*seq[i-1]) {
			*seq[i] = seq[i-1].Add(time.Minute)
		}
	}
}

func round(t time.Time, r Rounding) time.Time {
	switch r {
	case RoundingUp:
		if down := t.Truncate(time.Minute); !down.Equal(t) {
			return down.Add(time.Minute)
		}
		return t
	case RoundingNone:
		return t
	default:
		return t.Round(time.Minute)
	}
}
