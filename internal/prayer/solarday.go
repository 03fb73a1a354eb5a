// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/GetSky/SalahTracker/internal/ephemeris"
)

// Standard altitude of the sun's upper limb at sunrise and sunset, refraction included.
const sunriseAltitude = -0.833

// solarDay locates solar events of one UTC day at one latitude. Times are fractional
// hours from 00:00 UTC of the day and may fall outside [0, 24).
type solarDay struct {
	memo     *ephemeris.Memo
	jd0      float64
	latitude float64
	transit  float64
}

func newSolarDay(memo *ephemeris.Memo, jd0, latitude, longitude float64) solarDay {
	d := solarDay{memo: memo, jd0: jd0, latitude: latitude}
	mean := 12 - longitude/15
	d.transit = mean - memo.At(jd0+mean/24).EquationOfTime/60
	d.transit = mean - memo.At(jd0+d.transit/24).EquationOfTime/60
	return d
}

func (d solarDay) declination(hours float64) float64 {
	return d.memo.At(d.jd0 + hours/24).Declination
}

// event returns when the sun passes the altitude produced by altitude(declination),
// before transit for side -1 and after it for side +1. The estimate taken with the
// transit declination is refined once with the declination at that estimate.
func (d solarDay) event(altitude func(decl float64) float64, side float64) (float64, bool) {
	decl := d.declination(d.transit)
	h, ok := hourAngle(d.latitude, decl, altitude(decl))
	if !ok {
		return 0, false
	}
	decl = d.declination(d.transit + side*h)
	h, ok = hourAngle(d.latitude, decl, altitude(decl))
	if !ok {
		return 0, false
	}
	return d.transit + side*h, true
}

func (d solarDay) sunrise() (float64, bool) {
	return d.event(fixedAltitude(sunriseAltitude), -1)
}

func (d solarDay) sunset() (float64, bool) {
	return d.event(fixedAltitude(sunriseAltitude), 1)
}

func (d solarDay) asr(shadowFactor float64) (float64, bool) {
	return d.event(func(decl float64) float64 {
		z := unit.AngleFromDeg(math.Abs(d.latitude - decl))
		return unit.Angle(math.Atan(1 / (shadowFactor + math.Tan(z.Rad())))).Deg()
	}, 1)
}

func fixedAltitude(alt float64) func(float64) float64 {
	return func(float64) float64 { return alt }
}

// hourAngle solves cos H = (sin a - sin φ sin δ) / (cos φ cos δ) and returns H in hours.
// It reports false when the sun never reaches the altitude on that day.
func hourAngle(latitude, declination, altitude float64) (float64, bool) {
	phi := unit.AngleFromDeg(latitude)
	delta := unit.AngleFromDeg(declination)
	a := unit.AngleFromDeg(altitude)

	cosH := (a.Sin() - phi.Sin()*delta.Sin()) / (phi.Cos() * delta.Cos())
	if math.IsNaN(cosH) || cosH < -1 || cosH > 1 {
		return 0, false
	}
	return unit.Angle(math.Acos(cosH)).Deg() / 15, true
}

// skeleton holds the events every day needs regardless of convention.
type skeleton struct {
	day         solarDay
	sunrise     float64
	sunset      float64
	asr         float64
	nextSunrise float64 // hours from 00:00 UTC of day, so usually > 24
}

func newSkeleton(memo *ephemeris.Memo, jd0, latitude, longitude, shadowFactor float64) (skeleton, bool) {
	s := skeleton{day: newSolarDay(memo, jd0, latitude, longitude)}

	var ok bool
	if s.sunrise, ok = s.day.sunrise(); !ok {
		return s, false
	}
	if s.sunset, ok = s.day.sunset(); !ok {
		return s, false
	}
	if s.asr, ok = s.day.asr(shadowFactor); !ok {
		return s, false
	}
	next, ok := newSolarDay(memo, jd0+1, latitude, longitude).sunrise()
	if !ok {
		return s, false
	}
	s.nextSunrise = 24 + next

	return s, s.asr-s.day.transit >= MinimumAsrInterval.Hours()
}

func (s skeleton) night() float64 {
	return s.nextSunrise - s.sunset
}
