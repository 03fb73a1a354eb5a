// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type NightState struct {
	tracker     *PrayerTracker
	city        City
	scheduleSrv ScheduleService
	notifySrv   NotifyService
	validations *Validations
}

func NewNightState(city City, schedule ScheduleService, notify NotifyService, validations *Validations) *NightState {
	return &NightState{
		city:        city,
		scheduleSrv: schedule,
		notifySrv:   notify,
		validations: validations,
	}
}

func (s *NightState) SetTracker(tracker *PrayerTracker) {
	s.tracker = tracker
}

func (s *NightState) check(ctx context.Context, now time.Time) error {
	date := s.city.Date(now)
	times, err := s.scheduleSrv.Times(s.city, date)
	if err != nil {
		return err
	}

	if times.IsNight(now) {
		return nil
	}

	marks, err := s.validations.Today(ctx, s.city.ID, DateKey(date))
	if err != nil {
		return err
	}

	err = s.notifySrv.SendNewMessage(RenderSchedule(s.city, times, marks, times.CurrentPrayer(now)))
	if err != nil {
		return err
	}

	log.Info().Str("city", string(s.city.ID)).Str("date", DateKey(date)).Msg("day started")
	s.tracker.switchState(s.tracker.day)
	s.tracker.Check(ctx)

	return nil
}
