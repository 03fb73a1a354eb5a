// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

const usageMessage = `Commands:
/times [city] [YYYY-MM-DD] - prayer times
/next [city] - next prayer
/done [city] - validate the current prayer
/toggle <1-5> [city] - switch a check-mark
/sky [city] - twilight
/city <strasbourg|pavlodar> - default city`

// RenderSchedule formats the day of city. current is highlighted unless it is
// already validated; pass prayer.None for a day other than today.
func RenderSchedule(city City, times prayer.Times, marks Marks, current prayer.Prayer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🕌 *%s* · %s\n", city.Name, city.User)
	fmt.Fprintf(&b, "%s\n\n", times.Date.Format("Monday, 2 January"))

	for _, p := range prayer.Five {
		fmt.Fprintf(&b, "%s %s %s\n", markFor(p, marks, current), p, city.Clock(times.TimeForPrayer(p)))
		if p == prayer.Fajr {
			fmt.Fprintf(&b, "🌅 Sunrise %s\n", city.Clock(times.Sunrise))
		}
	}

	fmt.Fprintf(&b, "\nValidated %d/%d", marks.Count(), len(prayer.Five))
	if times.Adjusted != 0 {
		fmt.Fprintf(&b, "\n_High latitude: %s_", times.Adjusted)
	}
	return b.String()
}

func markFor(p prayer.Prayer, marks Marks, current prayer.Prayer) string {
	switch {
	case marks.Has(p):
		return "✅"
	case p == current:
		return "👉"
	default:
		return "▫️"
	}
}

// RenderNight is sent once after Maghrib.
func RenderNight(city City, times prayer.Times, sunnah prayer.SunnahTimes, marks Marks) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌙 *%s* · night\n", city.Name)
	fmt.Fprintf(&b, "Maghrib %s · Isha %s\n", city.Clock(times.Maghrib), city.Clock(times.Isha))
	fmt.Fprintf(&b, "Middle of the night %s\n", city.Clock(sunnah.MiddleOfTheNight))
	fmt.Fprintf(&b, "Last third of the night %s\n", city.Clock(sunnah.LastThirdOfTheNight))
	fmt.Fprintf(&b, "\nValidated %d/%d", marks.Count(), len(prayer.Five))
	return b.String()
}

func RenderNext(city City, p prayer.Prayer, at time.Time, now time.Time) string {
	return fmt.Sprintf("⏳ *%s*: next is %s at %s, in %s", city.Name, p, city.Clock(at), formatWait(at.Sub(now)))
}

func RenderTwilight(city City, date time.Time, tw Twilight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔭 *%s* · %s\n", city.Name, date.Format("Monday, 2 January"))
	for _, e := range []struct {
		name string
		at   time.Time
	}{
		{"Nautical dawn", tw.NauticalDawn},
		{"Civil dawn", tw.CivilDawn},
		{"Civil dusk", tw.CivilDusk},
		{"Nautical dusk", tw.NauticalDusk},
	} {
		clock := "-"
		if !e.at.IsZero() {
			clock = city.Clock(e.at)
		}
		fmt.Fprintf(&b, "%s %s\n", e.name, clock)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func formatWait(d time.Duration) string {
	d = d.Round(time.Minute)
	if d < 0 {
		d = 0
	}
	h, m := int(d.Hours()), int(d.Minutes())%60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
