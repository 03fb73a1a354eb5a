// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

var (
	ErrNoCurrentPrayer = errors.New("no prayer has started yet")
	ErrPrayerIndex     = errors.New("prayer index out of range")
)

// Marks are the check-marks of one city for one civil date, in prayer.Five order.
type Marks struct {
	Date string  `json:"date"`
	Done [5]bool `json:"done"`
}

func (m Marks) Count() int {
	n := 0
	for _, d := range m.Done {
		if d {
			n++
		}
	}
	return n
}

func (m Marks) Has(p prayer.Prayer) bool {
	idx := p.Index()
	return idx >= 0 && m.Done[idx]
}

// Validations serialises read-modify-write cycles on the shared store. Marks
// stored for another date are cleared on first access.
type Validations struct {
	mu    sync.Mutex
	store ValidationStore
}

func NewValidations(store ValidationStore) *Validations {
	return &Validations{store: store}
}

func (v *Validations) Today(ctx context.Context, city CityID, date string) (Marks, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.load(ctx, city, date)
}

// Toggle flips the mark at idx, an index into prayer.Five.
func (v *Validations) Toggle(ctx context.Context, city CityID, date string, idx int) (Marks, error) {
	if idx < 0 || idx >= len(prayer.Five) {
		return Marks{}, fmt.Errorf("validations → %w: %d", ErrPrayerIndex, idx)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	m, err := v.load(ctx, city, date)
	if err != nil {
		return Marks{}, err
	}
	m.Done[idx] = !m.Done[idx]

	return m, v.save(ctx, city, m)
}

// ValidateCurrent marks current as done. It is idempotent.
func (v *Validations) ValidateCurrent(ctx context.Context, city CityID, date string, current prayer.Prayer) (Marks, error) {
	idx := current.Index()
	if idx < 0 {
		return Marks{}, ErrNoCurrentPrayer
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	m, err := v.load(ctx, city, date)
	if err != nil {
		return Marks{}, err
	}
	m.Done[idx] = true

	return m, v.save(ctx, city, m)
}

func (v *Validations) load(ctx context.Context, city CityID, date string) (Marks, error) {
	m, err := v.store.Load(ctx, city)
	if err != nil {
		return Marks{}, fmt.Errorf("validations → %w", err)
	}
	if m.Date != date {
		m = Marks{Date: date}
		if err := v.save(ctx, city, m); err != nil {
			return Marks{}, err
		}
	}
	return m, nil
}

func (v *Validations) save(ctx context.Context, city CityID, m Marks) error {
	if err := v.store.Save(ctx, city, m); err != nil {
		return fmt.Errorf("validations → %w", err)
	}
	return nil
}
