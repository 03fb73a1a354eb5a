// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import (
	"fmt"
	"math"
)

// Madhab selects the Asr shadow factor.
type Madhab int

const (
	Shafi  Madhab = iota // shadow length equals object height
	Hanafi               // shadow length is twice the object height
)

// ShadowFactor returns the Asr shadow length multiplier.
func (m Madhab) ShadowFactor() float64 {
	if m == Hanafi {
		return 2
	}
	return 1
}

func (m Madhab) String() string {
	switch m {
	case Shafi:
		return "shafi"
	case Hanafi:
		return "hanafi"
	default:
		return fmt.Sprintf("madhab(%d)", int(m))
	}
}

func ParseMadhab(s string) (Madhab, error) {
	switch normalizeName(s) {
	case "shafi", "":
		return Shafi, nil
	case "hanafi":
		return Hanafi, nil
	}
	return Shafi, fmt.Errorf("%w: unknown madhab %q", ErrInvalidInput, s)
}

func (m Madhab) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Madhab) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMadhab(string(text))
	return err
}

// Rounding controls how computed instants are rounded.
type Rounding int

const (
	RoundingNearest Rounding = iota // nearest minute, half-minute rounds up
	RoundingUp                      // next whole minute
	RoundingNone
)

func (r Rounding) String() string {
	switch r {
	case RoundingNearest:
		return "nearest"
	case RoundingUp:
		return "up"
	case RoundingNone:
		return "none"
	default:
		return fmt.Sprintf("rounding(%d)", int(r))
	}
}

func ParseRounding(s string) (Rounding, error) {
	switch normalizeName(s) {
	case "nearest", "":
		return RoundingNearest, nil
	case "up":
		return RoundingUp, nil
	case "none":
		return RoundingNone, nil
	}
	return RoundingNearest, fmt.Errorf("%w: unknown rounding %q", ErrInvalidInput, s)
}

func (r Rounding) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Rounding) UnmarshalText(text []byte) (err error) {
	*r, err = ParseRounding(string(text))
	return err
}

// Adjustments are per-prayer offsets in minutes.
type Adjustments struct {
	Fajr    int `json:"fajr,omitempty" yaml:"fajr,omitempty"`
	Sunrise int `json:"sunrise,omitempty" yaml:"sunrise,omitempty"`
	Dhuhr   int `json:"dhuhr,omitempty" yaml:"dhuhr,omitempty"`
	Asr     int `json:"asr,omitempty" yaml:"asr,omitempty"`
	Maghrib int `json:"maghrib,omitempty" yaml:"maghrib,omitempty"`
	Isha    int `json:"isha,omitempty" yaml:"isha,omitempty"`
}

func (a Adjustments) plus(b Adjustments) Adjustments {
	return Adjustments{
		Fajr:    a.Fajr + b.Fajr,
		Sunrise: a.Sunrise + b.Sunrise,
		Dhuhr:   a.Dhuhr + b.Dhuhr,
		Asr:     a.Asr + b.Asr,
		Maghrib: a.Maghrib + b.Maghrib,
		Isha:    a.Isha + b.Isha,
	}
}

// Params is the full set of inputs of a calculation convention. Obtain one from
// Method.Params and override fields as needed; the zero value is not valid.
type Params struct {
	Method           Method           `json:"method" yaml:"method"`
	FajrAngle        float64          `json:"fajr_angle" yaml:"fajr_angle"`
	IshaAngle        float64          `json:"isha_angle" yaml:"isha_angle"`
	IshaInterval     int              `json:"isha_interval,omitempty" yaml:"isha_interval,omitempty"` // minutes after Maghrib, replaces IshaAngle when > 0
	MaghribAngle     float64          `json:"maghrib_angle,omitempty" yaml:"maghrib_angle,omitempty"` // 0 means sunset
	Madhab           Madhab           `json:"madhab" yaml:"madhab"`
	HighLatitudeRule HighLatitudeRule `json:"high_latitude_rule" yaml:"high_latitude_rule"`
	Rounding         Rounding         `json:"rounding" yaml:"rounding"`

	Adjustments       Adjustments `json:"adjustments" yaml:"adjustments"`
	MethodAdjustments Adjustments `json:"method_adjustments" yaml:"method_adjustments"`
}

// DefaultParams returns the parameters of DefaultMethod.
func DefaultParams() Params {
	return DefaultMethod.Params()
}

func (p Params) Validate() error {
	if _, ok := methodPresets[p.Method]; !ok {
		return fmt.Errorf("%w: unknown method %d", ErrInvalidInput, int(p.Method))
	}
	if !validAngle(p.FajrAngle) || p.FajrAngle == 0 {
		return fmt.Errorf("%w: fajr angle %v outside (0, 90)", ErrInvalidInput, p.FajrAngle)
	}
	if p.IshaInterval < 0 || p.IshaInterval >= 24*60 {
		return fmt.Errorf("%w: isha interval %d minutes outside [0, 1440)", ErrInvalidInput, p.IshaInterval)
	}
	if p.IshaInterval == 0 && (!validAngle(p.IshaAngle) || p.IshaAngle == 0) {
		return fmt.Errorf("%w: isha angle %v outside (0, 90)", ErrInvalidInput, p.IshaAngle)
	}
	if !validAngle(p.MaghribAngle) {
		return fmt.Errorf("%w: maghrib angle %v outside [0, 90)", ErrInvalidInput, p.MaghribAngle)
	}
	if p.Madhab != Shafi && p.Madhab != Hanafi {
		return fmt.Errorf("%w: unknown madhab %d", ErrInvalidInput, int(p.Madhab))
	}
	if p.HighLatitudeRule < MiddleOfTheNight || p.HighLatitudeRule > TwilightAngle {
		return fmt.Errorf("%w: unknown high latitude rule %d", ErrInvalidInput, int(p.HighLatitudeRule))
	}
	if p.Rounding < RoundingNearest || p.Rounding > RoundingNone {
		return fmt.Errorf("%w: unknown rounding %d", ErrInvalidInput, int(p.Rounding))
	}
	return nil
}

func validAngle(a float64) bool {
	return !math.IsNaN(a) && a >= 0 && a < 90
}
