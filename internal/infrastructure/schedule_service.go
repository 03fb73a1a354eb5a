// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/GetSky/SalahTracker/internal/application"
	"github.com/GetSky/SalahTracker/internal/prayer"
)

// cacheLimit bounds the number of city days kept. The map is dropped as a whole
// when full; trackers only ever ask for today and tomorrow.
const cacheLimit = 64

type computeFunc func(prayer.Coordinates, time.Time, prayer.Params) (prayer.Times, error)

type scheduleService struct {
	params  prayer.Params
	compute computeFunc

	group singleflight.Group
	mu    sync.RWMutex
	times map[string]prayer.Times
}

func NewScheduleService(params prayer.Params) application.ScheduleService {
	return newScheduleService(params, prayer.Compute)
}

func newScheduleService(params prayer.Params, compute computeFunc) *scheduleService {
	return &scheduleService{
		params:  params,
		compute: compute,
		times:   make(map[string]prayer.Times),
	}
}

func (s *scheduleService) Times(city application.City, date time.Time) (prayer.Times, error) {
	key := string(city.ID) + "/" + application.DateKey(date)

	s.mu.RLock()
	times, ok := s.times[key]
	s.mu.RUnlock()
	if ok {
		return times, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		times, err := s.compute(city.Coordinates, date, s.params)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if len(s.times) >= cacheLimit {
			s.times = make(map[string]prayer.Times)
		}
		s.times[key] = times
		s.mu.Unlock()

		return times, nil
	})
	if err != nil {
		return prayer.Times{}, fmt.Errorf("scheduleService → %w", err)
	}

	return v.(prayer.Times), nil
}

func (s *scheduleService) Sunnah(city application.City, date time.Time) (prayer.SunnahTimes, error) {
	today, err := s.Times(city, date)
	if err != nil {
		return prayer.SunnahTimes{}, err
	}
	tomorrow, err := s.Times(city, date.AddDate(0, 0, 1))
	if err != nil {
		return prayer.SunnahTimes{}, err
	}

	sunnah, err := prayer.SunnahTimesBetween(today, tomorrow)
	if err != nil {
		return prayer.SunnahTimes{}, fmt.Errorf("scheduleService → %w", err)
	}

	return sunnah, nil
}
