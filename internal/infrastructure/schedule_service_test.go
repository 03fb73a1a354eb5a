// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GetSky/SalahTracker/internal/application"
	"github.com/GetSky/SalahTracker/internal/prayer"
)

type countingCompute struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingCompute) compute(coords prayer.Coordinates, date time.Time, params prayer.Params) (prayer.Times, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return prayer.Times{}, c.err
	}
	return prayer.Compute(coords, date, params)
}

func (c *countingCompute) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func mustCity(t *testing.T, id application.CityID) application.City {
	t.Helper()
	city, err := application.LookupCity(string(id))
	require.NoError(t, err)
	return city
}

func TestScheduleServiceCachesPerCityDay(t *testing.T) {
	counter := &countingCompute{}
	srv := newScheduleService(prayer.DefaultParams(), counter.compute)
	strasbourg := mustCity(t, application.Strasbourg)
	pavlodar := mustCity(t, application.Pavlodar)
	date := time.Date(2026, time.February, 23, 0, 0, 0, 0, strasbourg.Location())

	first, err := srv.Times(strasbourg, date)
	require.NoError(t, err)
	second, err := srv.Times(strasbourg, date.Add(10*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counter.count())

	_, err = srv.Times(pavlodar, date)
	require.NoError(t, err)
	_, err = srv.Times(strasbourg, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, counter.count())

	want, err := prayer.Compute(strasbourg.Coordinates, date, prayer.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, want, first)
}

func TestScheduleServiceConcurrentCallers(t *testing.T) {
	counter := &countingCompute{}
	srv := newScheduleService(prayer.DefaultParams(), counter.compute)
	city := mustCity(t, application.Pavlodar)
	date := time.Date(2026, time.February, 23, 0, 0, 0, 0, city.Location())

	var wg sync.WaitGroup
	results := make([]prayer.Times, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			times, err := srv.Times(city, date)
			assert.NoError(t, err)
			results[i] = times
		}(i)
	}
	wg.Wait()

	for _, got := range results[1:] {
		assert.Equal(t, results[0], got)
	}
	assert.GreaterOrEqual(t, counter.count(), 1)
}

func TestScheduleServiceDropsCacheWhenFull(t *testing.T) {
	counter := &countingCompute{}
	srv := newScheduleService(prayer.DefaultParams(), counter.compute)
	city := mustCity(t, application.Strasbourg)
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, city.Location())

	for i := 0; i < cacheLimit; i++ {
		_, err := srv.Times(city, start.AddDate(0, 0, i))
		require.NoError(t, err)
	}
	_, err := srv.Times(city, start)
	require.NoError(t, err)
	assert.Equal(t, cacheLimit, counter.count())

	_, err = srv.Times(city, start.AddDate(0, 0, cacheLimit))
	require.NoError(t, err)
	_, err = srv.Times(city, start)
	require.NoError(t, err)
	assert.Equal(t, cacheLimit+2, counter.count())
}

func TestScheduleServiceErrors(t *testing.T) {
	boom := errors.New("boom")
	counter := &countingCompute{err: boom}
	srv := newScheduleService(prayer.DefaultParams(), counter.compute)
	city := mustCity(t, application.Strasbourg)
	date := time.Date(2026, time.February, 23, 0, 0, 0, 0, city.Location())

	_, err := srv.Times(city, date)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "scheduleService → ")

	_, err = srv.Sunnah(city, date)
	assert.ErrorIs(t, err, boom)

	// failures are not cached
	counter.mu.Lock()
	counter.err = nil
	counter.mu.Unlock()
	_, err = srv.Times(city, date)
	assert.NoError(t, err)
}

func TestScheduleServiceSunnah(t *testing.T) {
	srv := NewScheduleService(prayer.DefaultParams())
	city := mustCity(t, application.Strasbourg)
	date := time.Date(2026, time.February, 23, 0, 0, 0, 0, city.Location())

	sunnah, err := srv.Sunnah(city, date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 23, 22, 50, 0, 0, time.UTC), sunnah.MiddleOfTheNight.UTC())
	assert.Equal(t, time.Date(2026, time.February, 24, 0, 45, 0, 0, time.UTC), sunnah.LastThirdOfTheNight.UTC())
}

func TestScheduleServiceSunnahUsesCache(t *testing.T) {
	counter := &countingCompute{}
	srv := newScheduleService(prayer.DefaultParams(), counter.compute)
	city := mustCity(t, application.Strasbourg)
	date := time.Date(2026, time.February, 23, 0, 0, 0, 0, city.Location())

	_, err := srv.Sunnah(city, date)
	require.NoError(t, err)
	assert.Equal(t, 2, counter.count())

	_, err = srv.Sunnah(city, date)
	require.NoError(t, err)
	_, err = srv.Times(city, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, counter.count())
}
