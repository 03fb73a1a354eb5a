// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package ephemeris

// Memo caches solar positions by Julian date for the duration of one calculation.
// It is not safe for concurrent use.
type Memo struct {
	positions map[float64]SolarPosition
}

func NewMemo() *Memo {
	return &Memo{positions: make(map[float64]SolarPosition)}
}

// At returns the solar position at jd, computing it on first use.
func (m *Memo) At(jd float64) SolarPosition {
	if p, ok := m.positions[jd]; ok {
		return p
	}
	p := Compute(jd)
	m.positions[jd] = p
	return p
}

// Len reports how many distinct dates have been evaluated.
func (m *Memo) Len() int {
	return len(m.positions)
}
