// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

// CommandHandler answers bot commands. User mistakes produce a reply and a nil
// error; the error is reserved for failing collaborators.
type CommandHandler struct {
	mu          sync.Mutex
	city        City
	scheduleSrv ScheduleService
	twilightSrv TwilightService
	validations *Validations
	clock       Clock
}

func NewCommandHandler(
	defaultCity City,
	schedule ScheduleService,
	twilight TwilightService,
	validations *Validations,
	clock Clock,
) *CommandHandler {
	return &CommandHandler{
		city:        defaultCity,
		scheduleSrv: schedule,
		twilightSrv: twilight,
		validations: validations,
		clock:       clock,
	}
}

func (h *CommandHandler) DefaultCity() City {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.city
}

func (h *CommandHandler) Handle(ctx context.Context, command string, args string) (string, error) {
	fields := strings.Fields(args)
	now := h.clock.Now()

	switch strings.ToLower(command) {
	case "start", "help":
		return usageMessage, nil
	case "times":
		return h.times(ctx, fields, now)
	case "next":
		return h.next(fields, now)
	case "done":
		return h.done(ctx, fields, now)
	case "toggle":
		return h.toggle(ctx, fields, now)
	case "sky":
		return h.sky(fields, now)
	case "city":
		return h.selectCity(fields)
	default:
		return fmt.Sprintf("Unknown command /%s\n\n%s", command, usageMessage), nil
	}
}

func (h *CommandHandler) times(ctx context.Context, fields []string, now time.Time) (string, error) {
	city, rest, reply := h.cityArg(fields)
	if reply != "" {
		return reply, nil
	}

	today := city.Date(now)
	date := today
	if len(rest) > 1 {
		return usageMessage, nil
	}
	if len(rest) == 1 {
		parsed, err := time.ParseInLocation(time.DateOnly, rest[0], city.Location())
		if err != nil {
			return fmt.Sprintf("Cannot read date %q, expected YYYY-MM-DD", rest[0]), nil
		}
		date = parsed
	}

	times, err := h.scheduleSrv.Times(city, date)
	if err != nil {
		return "", err
	}

	if !date.Equal(today) {
		return RenderSchedule(city, times, Marks{}, prayer.None), nil
	}

	marks, err := h.validations.Today(ctx, city.ID, DateKey(today))
	if err != nil {
		return "", err
	}
	return RenderSchedule(city, times, marks, times.CurrentPrayer(now)), nil
}

func (h *CommandHandler) next(fields []string, now time.Time) (string, error) {
	city, rest, reply := h.cityArg(fields)
	if reply != "" {
		return reply, nil
	}
	if len(rest) > 0 {
		return usageMessage, nil
	}

	today := city.Date(now)
	times, err := h.scheduleSrv.Times(city, today)
	if err != nil {
		return "", err
	}

	p := times.NextPrayer(now)
	if p == prayer.None {
		times, err = h.scheduleSrv.Times(city, today.AddDate(0, 0, 1))
		if err != nil {
			return "", err
		}
		p = prayer.Fajr
	}

	return RenderNext(city, p, times.TimeForPrayer(p), now), nil
}

func (h *CommandHandler) done(ctx context.Context, fields []string, now time.Time) (string, error) {
	city, rest, reply := h.cityArg(fields)
	if reply != "" {
		return reply, nil
	}
	if len(rest) > 0 {
		return usageMessage, nil
	}

	today := city.Date(now)
	times, err := h.scheduleSrv.Times(city, today)
	if err != nil {
		return "", err
	}

	current := times.CurrentPrayer(now)
	marks, err := h.validations.ValidateCurrent(ctx, city.ID, DateKey(today), current)
	if errors.Is(err, ErrNoCurrentPrayer) {
		return fmt.Sprintf("No prayer has started yet in %s", city.Name), nil
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ %s validated for %s (%d/%d)", current, city.User, marks.Count(), len(prayer.Five)), nil
}

func (h *CommandHandler) toggle(ctx context.Context, fields []string, now time.Time) (string, error) {
	if len(fields) == 0 {
		return usageMessage, nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 || n > len(prayer.Five) {
		return fmt.Sprintf("Expected a prayer number from 1 to %d", len(prayer.Five)), nil
	}

	city, rest, reply := h.cityArg(fields[1:])
	if reply != "" {
		return reply, nil
	}
	if len(rest) > 0 {
		return usageMessage, nil
	}

	p := prayer.PrayerAt(n - 1)
	marks, err := h.validations.Toggle(ctx, city.ID, DateKey(city.Date(now)), n-1)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s for %s (%d/%d)", markFor(p, marks, prayer.None), p, city.User, marks.Count(), len(prayer.Five)), nil
}

func (h *CommandHandler) sky(fields []string, now time.Time) (string, error) {
	city, rest, reply := h.cityArg(fields)
	if reply != "" {
		return reply, nil
	}
	if len(rest) > 0 {
		return usageMessage, nil
	}

	date := city.Date(now)
	tw, err := h.twilightSrv.Twilight(city, date)
	if err != nil {
		return "", err
	}
	return RenderTwilight(city, date, tw), nil
}

func (h *CommandHandler) selectCity(fields []string) (string, error) {
	if len(fields) != 1 {
		return usageMessage, nil
	}
	city, err := LookupCity(fields[0])
	if err != nil {
		return fmt.Sprintf("Unknown city %q", fields[0]), nil
	}

	h.mu.Lock()
	h.city = city
	h.mu.Unlock()

	return fmt.Sprintf("Default city is now %s", city.Name), nil
}

// cityArg takes a leading city name off fields, falling back to the default city.
// A non-empty reply means the argument named no known city.
func (h *CommandHandler) cityArg(fields []string) (City, []string, string) {
	if len(fields) == 0 {
		return h.DefaultCity(), nil, ""
	}
	if city, err := LookupCity(fields[0]); err == nil {
		return city, fields[1:], ""
	}
	if _, err := time.Parse(time.DateOnly, fields[0]); err == nil {
		return h.DefaultCity(), fields, ""
	}
	return City{}, nil, fmt.Sprintf("Unknown city %q", fields[0])
}
