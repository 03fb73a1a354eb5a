// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

// TimesOptions holds the flags of the times command.
type TimesOptions struct {
	Latitude         float64
	Longitude        float64
	Date             string
	Offset           int
	Method           string
	Madhab           string
	HighLatitudeRule string
	FajrAngle        float64
	IshaAngle        float64
	Sunnah           bool
}

// TimesResult is the output of the times command. Instants are RFC 3339 in the
// requested offset.
type TimesResult struct {
	Date             string  `json:"date" yaml:"date"`
	Zone             string  `json:"zone" yaml:"zone"`
	Latitude         float64 `json:"latitude" yaml:"latitude"`
	Longitude        float64 `json:"longitude" yaml:"longitude"`
	Method           string  `json:"method" yaml:"method"`
	Madhab           string  `json:"madhab" yaml:"madhab"`
	HighLatitudeRule string  `json:"high_latitude_rule" yaml:"high_latitude_rule"`
	Adjusted         string  `json:"adjusted,omitempty" yaml:"adjusted,omitempty"`

	Fajr    string `json:"fajr" yaml:"fajr"`
	Sunrise string `json:"sunrise" yaml:"sunrise"`
	Dhuhr   string `json:"dhuhr" yaml:"dhuhr"`
	Asr     string `json:"asr" yaml:"asr"`
	Maghrib string `json:"maghrib" yaml:"maghrib"`
	Isha    string `json:"isha" yaml:"isha"`

	MiddleOfTheNight    string `json:"middle_of_the_night,omitempty" yaml:"middle_of_the_night,omitempty"`
	LastThirdOfTheNight string `json:"last_third_of_the_night,omitempty" yaml:"last_third_of_the_night,omitempty"`

	times  prayer.Times
	sunnah *prayer.SunnahTimes
	loc    *time.Location
}

// NewTimesCommand creates the times command.
func NewTimesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimesOptions{}

	cmd := &cobra.Command{
		Use:   "times",
		Short: "Compute prayer times for a place and date",
		Long: `Compute Fajr, Sunrise, Dhuhr, Asr, Maghrib and Isha for a place and date.

Times are printed in the fixed UTC offset given by --offset. The date is read in
that offset and defaults to today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
				return NewExitError(ExitCommandError, "--lat and --lon are required")
			}
			return runTimes(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Latitude, "lat", 0, "latitude in degrees, north positive")
	cmd.Flags().Float64Var(&opts.Longitude, "lon", 0, "longitude in degrees, east positive")
	cmd.Flags().StringVar(&opts.Date, "date", "", "civil date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "UTC offset of the output in hours")
	cmd.Flags().StringVar(&opts.Method, "method", prayer.DefaultMethod.String(), "calculation method, see the methods command")
	cmd.Flags().StringVar(&opts.Madhab, "madhab", prayer.Shafi.String(), "Asr convention (shafi|hanafi)")
	cmd.Flags().StringVar(&opts.HighLatitudeRule, "high-lat-rule", prayer.MiddleOfTheNight.String(),
		"high latitude rule (middle_of_the_night|seventh_of_the_night|twilight_angle)")
	cmd.Flags().Float64Var(&opts.FajrAngle, "fajr-angle", 0, "override the Fajr angle of the method")
	cmd.Flags().Float64Var(&opts.IshaAngle, "isha-angle", 0, "override the Isha angle of the method")
	cmd.Flags().BoolVar(&opts.Sunnah, "sunnah", false, "also print the middle and last third of the night")

	return cmd
}

func runTimes(rootOpts *RootOptions, opts *TimesOptions, cmd *cobra.Command) error {
	if opts.Offset < -12 || opts.Offset > 14 {
		return NewExitError(ExitCommandError, fmt.Sprintf("offset %d outside [-12, 14]", opts.Offset))
	}
	loc := time.FixedZone(fmt.Sprintf("UTC%+d", opts.Offset), opts.Offset*3600)

	date := rootOpts.now().In(loc)
	if opts.Date != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, opts.Date, loc)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("cannot read date %q", opts.Date), err)
		}
		date = parsed
	}

	params, err := opts.params(cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid parameters", err)
	}

	times, err := prayer.Compute(prayer.Coordinates{Latitude: opts.Latitude, Longitude: opts.Longitude}, date, params)
	if errors.Is(err, prayer.ErrInvalidInput) {
		return WrapExitError(ExitCommandError, "invalid input", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "calculation failed", err)
	}

	result := newTimesResult(times, loc)
	if opts.Sunnah {
		sunnah, err := prayer.NewSunnahTimes(times)
		if err != nil {
			return WrapExitError(ExitFailure, "calculation failed", err)
		}
		result.withSunnah(sunnah)
	}

	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(result)
}

func (o *TimesOptions) params(cmd *cobra.Command) (prayer.Params, error) {
	method, err := prayer.ParseMethod(o.Method)
	if err != nil {
		return prayer.Params{}, err
	}
	params := method.Params()

	if params.Madhab, err = prayer.ParseMadhab(o.Madhab); err != nil {
		return prayer.Params{}, err
	}
	if params.HighLatitudeRule, err = prayer.ParseHighLatitudeRule(o.HighLatitudeRule); err != nil {
		return prayer.Params{}, err
	}
	if cmd.Flags().Changed("fajr-angle") {
		params.FajrAngle = o.FajrAngle
	}
	if cmd.Flags().Changed("isha-angle") {
		params.IshaAngle = o.IshaAngle
		params.IshaInterval = 0
	}

	return params, params.Validate()
}

func newTimesResult(times prayer.Times, loc *time.Location) *TimesResult {
	stamp := func(t time.Time) string { return t.In(loc).Format(time.RFC3339) }

	r := &TimesResult{
		Date:             times.Date.Format(time.DateOnly),
		Zone:             loc.String(),
		Latitude:         times.Coordinates.Latitude,
		Longitude:        times.Coordinates.Longitude,
		Method:           times.Params.Method.String(),
		Madhab:           times.Params.Madhab.String(),
		HighLatitudeRule: times.Params.HighLatitudeRule.String(),
		Fajr:             stamp(times.Fajr),
		Sunrise:          stamp(times.Sunrise),
		Dhuhr:            stamp(times.Dhuhr),
		Asr:              stamp(times.Asr),
		Maghrib:          stamp(times.Maghrib),
		Isha:             stamp(times.Isha),
		times:            times,
		loc:              loc,
	}
	if times.Adjusted != 0 {
		r.Adjusted = times.Adjusted.String()
	}
	return r
}

func (r *TimesResult) withSunnah(sunnah prayer.SunnahTimes) {
	r.sunnah = &sunnah
	r.MiddleOfTheNight = sunnah.MiddleOfTheNight.In(r.loc).Format(time.RFC3339)
	r.LastThirdOfTheNight = sunnah.LastThirdOfTheNight.In(r.loc).Format(time.RFC3339)
}

func (r *TimesResult) String() string {
	var b strings.Builder
	line := func(label, value string) { fmt.Fprintf(&b, "%-21s%s\n", label, value) }
	clock := func(t time.Time) string { return t.In(r.loc).Format("15:04") }

	line("Date", r.Date)
	line("Time zone", r.Zone)
	line("Coordinates", r.times.Coordinates.String())
	line("Method", r.Method)
	line("Madhab", r.Madhab)
	line("High latitude rule", r.HighLatitudeRule)
	if r.Adjusted != "" {
		line("Adjusted", r.Adjusted)
	}
	line("Fajr", clock(r.times.Fajr))
	line("Sunrise", clock(r.times.Sunrise))
	line("Dhuhr", clock(r.times.Dhuhr))
	line("Asr", clock(r.times.Asr))
	line("Maghrib", clock(r.times.Maghrib))
	line("Isha", clock(r.times.Isha))
	if r.sunnah != nil {
		line("Middle of the night", clock(r.sunnah.MiddleOfTheNight))
		line("Last third", clock(r.sunnah.LastThirdOfTheNight))
	}

	return b.String()
}
