// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GetSky/SalahTracker/config"
	"github.com/GetSky/SalahTracker/internal/prayer"
)

func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")
}

func TestNewConfDefaults(t *testing.T) {
	setRequired(t)

	cnf, err := config.NewConf()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cnf.BotToken)
	assert.Equal(t, "-1001", cnf.TelegramChat)
	assert.Equal(t, prayer.MuslimWorldLeague, cnf.Method)
	assert.Equal(t, prayer.Shafi, cnf.Madhab)
	assert.Equal(t, prayer.MiddleOfTheNight, cnf.HighLatitudeRule)
	assert.Equal(t, "strasbourg", cnf.DefaultCity)
	assert.Equal(t, time.Minute, cnf.PollInterval)
	assert.Equal(t, "info", cnf.LogLevel)
	assert.False(t, cnf.LogPretty)

	p, err := cnf.Params()
	require.NoError(t, err)
	assert.Equal(t, prayer.DefaultParams(), p)
}

func TestNewConfOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CALCULATION_METHOD", "umm_al_qura")
	t.Setenv("MADHAB", "hanafi")
	t.Setenv("HIGH_LATITUDE_RULE", "seventh_of_the_night")
	t.Setenv("DEFAULT_CITY", "pavlodar")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("LOG_PRETTY", "true")

	cnf, err := config.NewConf()
	require.NoError(t, err)

	p, err := cnf.Params()
	require.NoError(t, err)
	assert.Equal(t, prayer.UmmAlQura, p.Method)
	assert.Equal(t, 90, p.IshaInterval)
	assert.Equal(t, prayer.Hanafi, p.Madhab)
	assert.Equal(t, prayer.SeventhOfTheNight, p.HighLatitudeRule)
	assert.Equal(t, "pavlodar", cnf.DefaultCity)
	assert.Equal(t, 30*time.Second, cnf.PollInterval)
	assert.True(t, cnf.LogPretty)
}

func TestNewConfRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := config.NewConf()
	assert.Error(t, err)
}

func TestNewConfUnknownMethod(t *testing.T) {
	setRequired(t)
	t.Setenv("CALCULATION_METHOD", "jafari")

	_, err := config.NewConf()
	assert.ErrorContains(t, err, "jafari")
}

func TestParamsOtherNeedsAngles(t *testing.T) {
	cnf := &config.Conf{Method: prayer.Other}

	_, err := cnf.Params()
	assert.ErrorIs(t, err, prayer.ErrInvalidInput)
}
