// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

type CityID string

const (
	Strasbourg CityID = "strasbourg"
	Pavlodar   CityID = "pavlodar"
)

var ErrUnknownCity = errors.New("unknown city")

// City is a tracked place and the person praying there.
type City struct {
	ID          CityID
	Name        string
	User        string
	Coordinates prayer.Coordinates
	Offset      int // hours east of UTC
}

var cities = []City{
	{
		ID:          Strasbourg,
		Name:        "Strasbourg",
		User:        "Adam",
		Coordinates: prayer.Coordinates{Latitude: 48.5734, Longitude: 7.7521},
		Offset:      1,
	},
	{
		ID:          Pavlodar,
		Name:        "Pavlodar",
		User:        "Sheïla",
		Coordinates: prayer.Coordinates{Latitude: 52.2873, Longitude: 76.9674},
		Offset:      5,
	},
}

func Cities() []City {
	return slices.Clone(cities)
}

func LookupCity(id string) (City, error) {
	key := CityID(strings.ToLower(strings.TrimSpace(id)))
	for _, c := range cities {
		if c.ID == key {
			return c, nil
		}
	}
	return City{}, fmt.Errorf("%w %q", ErrUnknownCity, id)
}

func (c City) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.Offset), c.Offset*60*60)
}

// Date returns midnight of the civil date at the city for the instant now.
func (c City) Date(now time.Time) time.Time {
	loc := c.Location()
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Clock formats t as a local wall-clock time.
func (c City) Clock(t time.Time) string {
	return t.In(c.Location()).Format("15:04")
}

func DateKey(date time.Time) string {
	return date.Format(time.DateOnly)
}
