// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

type DayState struct {
	tracker     *PrayerTracker
	city        City
	scheduleSrv ScheduleService
	notifySrv   NotifyService
	validations *Validations

	current prayer.Prayer
	marks   Marks
}

func NewDayState(city City, schedule ScheduleService, notify NotifyService, validations *Validations) *DayState {
	return &DayState{
		city:        city,
		scheduleSrv: schedule,
		notifySrv:   notify,
		validations: validations,
	}
}

func (s *DayState) SetTracker(tracker *PrayerTracker) {
	s.tracker = tracker
}

func (s *DayState) check(ctx context.Context, now time.Time) error {
	date := s.city.Date(now)
	times, err := s.scheduleSrv.Times(s.city, date)
	if err != nil {
		return err
	}

	marks, err := s.validations.Today(ctx, s.city.ID, DateKey(date))
	if err != nil {
		return err
	}

	if times.IsNight(now) {
		return s.endDay(times, marks)
	}

	current := times.CurrentPrayer(now)
	if current == s.current && marks == s.marks {
		return nil
	}

	err = s.notifySrv.UpdateLastMessage(RenderSchedule(s.city, times, marks, current))
	if err != nil {
		return err
	}

	s.current = current
	s.marks = marks

	return nil
}

func (s *DayState) endDay(times prayer.Times, marks Marks) error {
	sunnah, err := s.scheduleSrv.Sunnah(s.city, times.Date)
	if err != nil {
		return err
	}

	err = s.notifySrv.SendNewMessage(RenderNight(s.city, times, sunnah, marks))
	if err != nil {
		return err
	}

	log.Info().Str("city", string(s.city.ID)).Int("validated", marks.Count()).Msg("night started")
	s.current = prayer.None
	s.marks = Marks{}
	s.tracker.switchState(s.tracker.night)

	return nil
}
