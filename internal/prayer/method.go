// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import (
	"fmt"
	"sort"
)

// Method is one of the fixed catalog of calculation conventions.
type Method int

const (
	MuslimWorldLeague Method = iota
	Egyptian
	Karachi
	UmmAlQura
	Dubai
	NorthAmerica
	Kuwait
	Qatar
	Singapore
	Tehran
	Turkey
	// Other carries no angles; callers must set FajrAngle and IshaAngle themselves.
	Other
)

// DefaultMethod is used when no convention is selected.
const DefaultMethod = MuslimWorldLeague

type methodPreset struct {
	name    string
	fajr    float64
	isha    float64
	ishaMin int
	maghrib float64
	adjust  Adjustments
	round   Rounding
}

var methodPresets = map[Method]methodPreset{
	MuslimWorldLeague: {name: "MuslimWorldLeague", fajr: 18, isha: 17, adjust: Adjustments{Dhuhr: 1}},
	Egyptian:          {name: "Egyptian", fajr: 19.5, isha: 17.5, adjust: Adjustments{Dhuhr: 1}},
	Karachi:           {name: "Karachi", fajr: 18, isha: 18, adjust: Adjustments{Dhuhr: 1}},
	UmmAlQura:         {name: "UmmAlQura", fajr: 18.5, ishaMin: 90},
	Dubai:             {name: "Dubai", fajr: 18.2, isha: 18.2, adjust: Adjustments{Sunrise: -3, Dhuhr: 3, Asr: 3, Maghrib: 3}},
	NorthAmerica:      {name: "NorthAmerica", fajr: 15, isha: 15, adjust: Adjustments{Dhuhr: 1}},
	Kuwait:            {name: "Kuwait", fajr: 18, isha: 17.5},
	Qatar:             {name: "Qatar", fajr: 18, ishaMin: 90},
	Singapore:         {name: "Singapore", fajr: 20, isha: 18, adjust: Adjustments{Dhuhr: 1}, round: RoundingUp},
	Tehran:            {name: "Tehran", fajr: 17.7, isha: 14, maghrib: 4.5},
	Turkey:            {name: "Turkey", fajr: 18, isha: 17, adjust: Adjustments{Sunrise: -7, Dhuhr: 5, Asr: 4, Maghrib: 7}},
	Other:             {name: "Other"},
}

// Methods returns the catalog in declaration order.
func Methods() []Method {
	out := make([]Method, 0, len(methodPresets))
	for m := range methodPresets {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Params returns the preset parameters of the method with the Shafi madhab,
// the middle-of-the-night rule and no user adjustments.
func (m Method) Params() Params {
	p := methodPresets[m]
	return Params{
		Method:            m,
		FajrAngle:         p.fajr,
		IshaAngle:         p.isha,
		IshaInterval:      p.ishaMin,
		MaghribAngle:      p.maghrib,
		Rounding:          p.round,
		MethodAdjustments: p.adjust,
	}
}

func (m Method) String() string {
	if p, ok := methodPresets[m]; ok {
		return p.name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod resolves a method by name, ignoring case and separators.
func ParseMethod(s string) (Method, error) {
	if normalizeName(s) == "" {
		return DefaultMethod, nil
	}
	for m, p := range methodPresets {
		if normalizeName(p.name) == normalizeName(s) {
			return m, nil
		}
	}
	return DefaultMethod, fmt.Errorf("%w: unknown calculation method %q", ErrInvalidInput, s)
}

func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Method) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMethod(string(text))
	return err
}
