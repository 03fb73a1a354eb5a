// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/GetSky/SalahTracker/internal/prayer"
)

type Conf struct {
	BotToken     string `env:"BOT_TOKEN,required,notEmpty"`
	TelegramChat string `env:"TELEGRAM_CHAT_ID,required,notEmpty"`

	Method           prayer.Method           `env:"CALCULATION_METHOD" envDefault:"MuslimWorldLeague"`
	Madhab           prayer.Madhab           `env:"MADHAB" envDefault:"shafi"`
	HighLatitudeRule prayer.HighLatitudeRule `env:"HIGH_LATITUDE_RULE" envDefault:"middle_of_the_night"`
	DefaultCity      string                  `env:"DEFAULT_CITY" envDefault:"strasbourg"`

	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1m"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty    bool          `env:"LOG_PRETTY" envDefault:"false"`
}

func NewConf() (*Conf, error) {
	cnf := &Conf{}
	if err := env.Parse(cnf); err != nil {
		return nil, fmt.Errorf("config → %w", err)
	}

	return cnf, nil
}

// Params builds the calculation parameters selected by the environment.
func (c *Conf) Params() (prayer.Params, error) {
	p := c.Method.Params()
	p.Madhab = c.Madhab
	p.HighLatitudeRule = c.HighLatitudeRule
	if err := p.Validate(); err != nil {
		return prayer.Params{}, fmt.Errorf("config → %w", err)
	}

	return p, nil
}
