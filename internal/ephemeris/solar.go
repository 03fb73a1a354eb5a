// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package ephemeris

import (
	"math"

	"github.com/soniakeys/unit"
)

// SolarPosition is the apparent position of the sun needed to derive hour angles.
type SolarPosition struct {
	Declination    float64 // degrees
	RightAscension float64 // hours, [0, 24)
	EquationOfTime float64 // minutes, apparent minus mean solar time
}

// Compute evaluates the low-precision solar coordinates at the Julian date jd.
// Accuracy is about one arc-minute between 1950 and 2050 and degrades slowly outside.
func Compute(jd float64) SolarPosition {
	n := jd - J2000

	meanLongitude := normalizeDegrees(280.460 + 0.9856474*n)
	meanAnomaly := unit.AngleFromDeg(normalizeDegrees(357.528 + 0.9856003*n))
	g2 := unit.AngleFromDeg(2 * meanAnomaly.Deg())

	lambda := unit.AngleFromDeg(meanLongitude + 1.915*meanAnomaly.Sin() + 0.020*g2.Sin())
	epsilon := unit.AngleFromDeg(23.439 - 0.0000004*n)

	ra := unit.Angle(math.Atan2(epsilon.Cos()*lambda.Sin(), lambda.Cos()))
	raHours := normalizeHours(ra.Deg() / 15)
	decl := unit.Angle(math.Asin(epsilon.Sin() * lambda.Sin()))

	eqt := meanLongitude/15 - raHours
	if eqt > 12 {
		eqt -= 24
	} else if eqt < -12 {
		eqt += 24
	}

	return SolarPosition{
		Declination:    decl.Deg(),
		RightAscension: raHours,
		EquationOfTime: eqt * 60,
	}
}

func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func normalizeHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}
