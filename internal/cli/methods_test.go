// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

func TestMethodsText(t *testing.T) {
	out, err := execute(t, "methods")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(prayer.Methods()))
	assert.Equal(t, []string{"MuslimWorldLeague", "fajr", "18°", "isha", "17°"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"UmmAlQura", "fajr", "18.5°", "isha", "90", "min"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"Other", "fajr", "-", "isha", "-"}, strings.Fields(lines[len(lines)-1]))
}

func TestMethodsJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "methods")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   MethodsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Methods, len(prayer.Methods()))

	tehran := resp.Data.Methods[prayer.Tehran]
	assert.Equal(t, "Tehran", tehran.Name)
	assert.Equal(t, 4.5, tehran.MaghribAngle)
	assert.Equal(t, 14.0, tehran.IshaAngle)

	dubai := resp.Data.Methods[prayer.Dubai]
	assert.Equal(t, prayer.Adjustments{Sunrise: -3, Dhuhr: 3, Asr: 3, Maghrib: 3}, dubai.Adjustments)
}

func TestMethodsYAML(t *testing.T) {
	out, err := execute(t, "--format", "yaml", "methods")
	require.NoError(t, err)

	var got MethodsResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Methods, len(prayer.Methods()))
	assert.Equal(t, "Qatar", got.Methods[prayer.Qatar].Name)
	assert.Equal(t, 90, got.Methods[prayer.Qatar].IshaInterval)
	assert.Contains(t, out, "\n  - name: Karachi\n")
}
