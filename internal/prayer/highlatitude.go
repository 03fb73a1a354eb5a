// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import (
	"fmt"
	"strings"
	"time"
)

// HighLatitudeRule bounds Fajr and Isha by a portion of the night, measured from
// sunset to the next sunrise. The bound replaces the angle-based time when the sun
// never reaches the angle or reaches it beyond the bound.
type HighLatitudeRule int

const (
	MiddleOfTheNight  HighLatitudeRule = iota // half of the night
	SeventhOfTheNight                         // one seventh of the night
	TwilightAngle                             // angle/60 of the night
)

const (
	// MinimumAsrInterval is the shortest transit-to-Asr span accepted for a day.
	// Shorter or absent days trigger AdjustedLatitude.
	MinimumAsrInterval = 15 * time.Minute

	// LatitudeStep is the increment used when moving toward the equator.
	LatitudeStep = 0.5
)

func (r HighLatitudeRule) portion(angle float64) float64 {
	switch r {
	case SeventhOfTheNight:
		return 1.0 / 7.0
	case TwilightAngle:
		return angle / 60.0
	default:
		return 0.5
	}
}

func (r HighLatitudeRule) String() string {
	switch r {
	case MiddleOfTheNight:
		return "middle_of_the_night"
	case SeventhOfTheNight:
		return "seventh_of_the_night"
	case TwilightAngle:
		return "twilight_angle"
	default:
		return fmt.Sprintf("high_latitude_rule(%d)", int(r))
	}
}

func ParseHighLatitudeRule(s string) (HighLatitudeRule, error) {
	switch normalizeName(s) {
	case "middleofthenight", "middle", "":
		return MiddleOfTheNight, nil
	case "seventhofthenight", "seventh":
		return SeventhOfTheNight, nil
	case "twilightangle", "twilight":
		return TwilightAngle, nil
	}
	return MiddleOfTheNight, fmt.Errorf("%w: unknown high latitude rule %q", ErrInvalidInput, s)
}

func (r HighLatitudeRule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *HighLatitudeRule) UnmarshalText(text []byte) (err error) {
	*r, err = ParseHighLatitudeRule(string(text))
	return err
}

// HighLatitudeAdjustment records which fallbacks a calculation applied.
type HighLatitudeAdjustment uint8

const (
	// AdjustedLatitude: the requested latitude had no usable day, times were computed at
	// the nearest latitude toward the equator that has one (see Times.EffectiveLatitude).
	AdjustedLatitude HighLatitudeAdjustment = 1 << iota
	AdjustedFajr
	AdjustedIsha
)

func (a HighLatitudeAdjustment) Has(flag HighLatitudeAdjustment) bool {
	return a&flag != 0
}

func (a HighLatitudeAdjustment) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a.Has(AdjustedLatitude) {
		parts = append(parts, "latitude")
	}
	if a.Has(AdjustedFajr) {
		parts = append(parts, "fajr")
	}
	if a.Has(AdjustedIsha) {
		parts = append(parts, "isha")
	}
	return strings.Join(parts, ",")
}

func (a HighLatitudeAdjustment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
