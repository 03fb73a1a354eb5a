// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"time"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

type ScheduleService interface {
	Times(city City, date time.Time) (prayer.Times, error)
	Sunnah(city City, date time.Time) (prayer.SunnahTimes, error)
}

type TwilightService interface {
	Twilight(city City, date time.Time) (Twilight, error)
}

type NotifyService interface {
	SendNewMessage(text string) error
	UpdateLastMessage(text string) error
}

type CommandService interface {
	Run(ctx context.Context) error
}

// ValidationStore keeps the check-marks shared by both users.
type ValidationStore interface {
	Load(ctx context.Context, city CityID) (Marks, error)
	Save(ctx context.Context, city CityID, marks Marks) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Twilight holds the sky events around sunrise and sunset. A zero field means the
// sun does not reach that depression on the date.
type Twilight struct {
	NauticalDawn time.Time
	CivilDawn    time.Time
	CivilDusk    time.Time
	NauticalDusk time.Time
}
