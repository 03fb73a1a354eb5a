// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GetSky/SalahTracker/internal/application"
	"github.com/GetSky/SalahTracker/internal/prayer"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

type fakeSchedule struct {
	err error
}

func (s *fakeSchedule) Times(city application.City, date time.Time) (prayer.Times, error) {
	if s.err != nil {
		return prayer.Times{}, s.err
	}
	return prayer.Compute(city.Coordinates, date, prayer.DefaultParams())
}

func (s *fakeSchedule) Sunnah(city application.City, date time.Time) (prayer.SunnahTimes, error) {
	times, err := s.Times(city, date)
	if err != nil {
		return prayer.SunnahTimes{}, err
	}
	return prayer.NewSunnahTimes(times)
}

type fakeTwilight struct {
	tw application.Twilight
}

func (f fakeTwilight) Twilight(application.City, time.Time) (application.Twilight, error) {
	return f.tw, nil
}

type fakeNotify struct {
	sent    []string
	updated []string
	err     error
}

func (n *fakeNotify) SendNewMessage(text string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, text)
	return nil
}

func (n *fakeNotify) UpdateLastMessage(text string) error {
	if n.err != nil {
		return n.err
	}
	n.updated = append(n.updated, text)
	return nil
}

type fakeStore struct {
	mu    sync.Mutex
	marks map[application.CityID]application.Marks
	err   error
	saves int
}

func newFakeStore() *fakeStore {
	return &fakeStore{marks: map[application.CityID]application.Marks{}}
}

func (s *fakeStore) Load(_ context.Context, city application.CityID) (application.Marks, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return application.Marks{}, s.err
	}
	return s.marks[city], nil
}

func (s *fakeStore) Save(_ context.Context, city application.CityID, m application.Marks) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saves++
	s.marks[city] = m
	return nil
}

var errBoom = errors.New("boom")

func mustCity(id application.CityID) application.City {
	c, err := application.LookupCity(string(id))
	if err != nil {
		panic(err)
	}
	return c
}

func utc(day, hour, min int) time.Time {
	return time.Date(2026, time.February, day, hour, min, 0, 0, time.UTC)
}
