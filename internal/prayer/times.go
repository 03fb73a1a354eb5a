// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import (
	"fmt"
	"time"
)

// Prayer names one of the daily times. Sunrise is auxiliary: it ends the Fajr window
// but is not one of the five prayers.
type Prayer int

const (
	None Prayer = iota
	Fajr
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

// Five lists the obligatory prayers in daily order.
var Five = [5]Prayer{Fajr, Dhuhr, Asr, Maghrib, Isha}

func (p Prayer) String() string {
	switch p {
	case None:
		return "None"
	case Fajr:
		return "Fajr"
	case Sunrise:
		return "Sunrise"
	case Dhuhr:
		return "Dhuhr"
	case Asr:
		return "Asr"
	case Maghrib:
		return "Maghrib"
	case Isha:
		return "Isha"
	default:
		return fmt.Sprintf("Prayer(%d)", int(p))
	}
}

// Index returns the position of p in Five, or -1.
func (p Prayer) Index() int {
	for i, f := range Five {
		if f == p {
			return i
		}
	}
	return -1
}

// PrayerAt is the inverse of Index.
func PrayerAt(idx int) Prayer {
	if idx < 0 || idx >= len(Five) {
		return None
	}
	return Five[idx]
}

// Times is the result of one calculation. All instants are UTC.
type Times struct {
	Fajr    time.Time `json:"fajr" yaml:"fajr"`
	Sunrise time.Time `json:"sunrise" yaml:"sunrise"`
	Dhuhr   time.Time `json:"dhuhr" yaml:"dhuhr"`
	Asr     time.Time `json:"asr" yaml:"asr"`
	Maghrib time.Time `json:"maghrib" yaml:"maghrib"`
	Isha    time.Time `json:"isha" yaml:"isha"`

	Date              time.Time              `json:"date" yaml:"date"` // 00:00 UTC of the civil date
	Coordinates       Coordinates            `json:"coordinates" yaml:"coordinates"`
	Params            Params                 `json:"params" yaml:"params"`
	EffectiveLatitude float64                `json:"effective_latitude" yaml:"effective_latitude"`
	Adjusted          HighLatitudeAdjustment `json:"adjusted" yaml:"adjusted"`
}

// Prayers returns the five prayer times in daily order.
func (t Times) Prayers() [5]time.Time {
	return [5]time.Time{t.Fajr, t.Dhuhr, t.Asr, t.Maghrib, t.Isha}
}

func (t Times) TimeForPrayer(p Prayer) time.Time {
	switch p {
	case Fajr:
		return t.Fajr
	case Sunrise:
		return t.Sunrise
	case Dhuhr:
		return t.Dhuhr
	case Asr:
		return t.Asr
	case Maghrib:
		return t.Maghrib
	case Isha:
		return t.Isha
	default:
		return time.Time{}
	}
}

// CurrentPrayer returns the last of the five prayers whose time is not after at,
// or None before Fajr.
func (t Times) CurrentPrayer(at time.Time) Prayer {
	current := None
	for i, pt := range t.Prayers() {
		if !at.Before(pt) {
			current = Five[i]
		}
	}
	return current
}

// NextPrayer returns the first of the five prayers after at, or None after Isha.
func (t Times) NextPrayer(at time.Time) Prayer {
	for i, pt := range t.Prayers() {
		if at.Before(pt) {
			return Five[i]
		}
	}
	return None
}

// IsNight reports whether at is before Fajr or after Maghrib.
func (t Times) IsNight(at time.Time) bool {
	return at.Before(t.Fajr) || at.After(t.Maghrib)
}
