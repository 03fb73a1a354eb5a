// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package ephemeris

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// J2000 is the Julian date of 2000-01-01 12:00 TT.
const J2000 = 2451545.0

// JulianDay returns the Julian date at 00:00 UT of the given Gregorian calendar date.
func JulianDay(year int, month time.Month, day int) float64 {
	return julian.CalendarGregorianToJD(year, int(month), float64(day))
}

// JulianDate returns the continuous Julian date of t, fraction of day included.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return JulianDay(y, m, d) + t.Sub(midnight).Hours()/24
}
