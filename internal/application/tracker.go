// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type State interface {
	check(ctx context.Context, now time.Time) error
	SetTracker(tracker *PrayerTracker)
}

// PrayerTracker follows one city through the day. It starts in the night state
// and moves to the day state at Fajr, then back at Maghrib.
type PrayerTracker struct {
	city  City
	clock Clock

	day   State
	night State

	currentState State
}

func NewPrayerTracker(city City, clock Clock, day State, night State) *PrayerTracker {
	t := &PrayerTracker{
		city:  city,
		clock: clock,
		day:   day,
		night: night,
	}
	day.SetTracker(t)
	night.SetTracker(t)
	t.switchState(night)
	return t
}

func (t *PrayerTracker) switchState(s State) {
	t.currentState = s
}

func (t *PrayerTracker) IsDay() bool {
	return t.currentState == t.day
}

func (t *PrayerTracker) Check(ctx context.Context) {
	err := t.currentState.check(ctx, t.clock.Now())
	if err != nil {
		log.Error().Err(err).Str("city", string(t.city.ID)).Msg("tracker check failed")
	}
}

// Run checks once per interval until ctx is done.
func (t *PrayerTracker) Run(ctx context.Context, interval time.Duration) {
	log.Info().Str("city", string(t.city.ID)).Dur("interval", interval).Msg("tracker started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Check(ctx)
		}
	}
}
