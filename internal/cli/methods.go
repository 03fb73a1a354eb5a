// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

// MethodInfo describes one calculation method.
type MethodInfo struct {
	Name         string             `json:"name" yaml:"name"`
	FajrAngle    float64            `json:"fajr_angle" yaml:"fajr_angle"`
	IshaAngle    float64            `json:"isha_angle,omitempty" yaml:"isha_angle,omitempty"`
	IshaInterval int                `json:"isha_interval,omitempty" yaml:"isha_interval,omitempty"`
	MaghribAngle float64            `json:"maghrib_angle,omitempty" yaml:"maghrib_angle,omitempty"`
	Adjustments  prayer.Adjustments `json:"adjustments" yaml:"adjustments"`
}

// MethodsResult is the output of the methods command.
type MethodsResult struct {
	Methods []MethodInfo `json:"methods" yaml:"methods"`
}

// NewMethodsCommand creates the methods command.
func NewMethodsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the calculation methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Success(listMethods())
		},
	}
}

func listMethods() *MethodsResult {
	r := &MethodsResult{}
	for _, m := range prayer.Methods() {
		p := m.Params()
		r.Methods = append(r.Methods, MethodInfo{
			Name:         m.String(),
			FajrAngle:    p.FajrAngle,
			IshaAngle:    p.IshaAngle,
			IshaInterval: p.IshaInterval,
			MaghribAngle: p.MaghribAngle,
			Adjustments:  p.MethodAdjustments,
		})
	}
	return r
}

func (r *MethodsResult) String() string {
	var b strings.Builder
	for _, m := range r.Methods {
		isha := angle(m.IshaAngle)
		if m.IshaInterval > 0 {
			isha = fmt.Sprintf("%d min", m.IshaInterval)
		}
		fmt.Fprintf(&b, "%-18s fajr %-6s isha %s\n", m.Name, angle(m.FajrAngle), isha)
	}
	return b.String()
}

func angle(a float64) string {
	if a == 0 {
		return "-"
	}
	return strconv.FormatFloat(a, 'f', -1, 64) + "°"
}
