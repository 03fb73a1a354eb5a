// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/GetSky/SalahTracker/config"
	"github.com/GetSky/SalahTracker/internal/application"
	"github.com/GetSky/SalahTracker/internal/infrastructure"
	"github.com/GetSky/SalahTracker/internal/logging"
)

var cnf *config.Conf

var bot *tgbotapi.BotAPI
var scheduleSrv application.ScheduleService
var twilightSrv application.TwilightService
var validations *application.Validations
var clock application.Clock = application.SystemClock{}

func init() {
	var err error
	cnf, err = config.NewConf()
	if err != nil {
		log.Fatal().Err(err).Msg("Main → cannot read configuration")
	}
	if err = logging.Setup(cnf.LogLevel, cnf.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("Main → cannot set up logging")
	}

	params, err := cnf.Params()
	if err != nil {
		log.Fatal().Err(err).Msg("Main → invalid calculation parameters")
	}

	bot, err = tgbotapi.NewBotAPI(cnf.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Main → cannot connect to Telegram")
	}

	scheduleSrv = infrastructure.NewScheduleService(params)
	twilightSrv = infrastructure.NewTwilightService()
	validations = application.NewValidations(infrastructure.NewMemoryValidationStore())
}

func main() {
	defaultCity, err := application.LookupCity(cnf.DefaultCity)
	if err != nil {
		log.Fatal().Err(err).Msg("Main → unknown default city")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	for _, city := range application.Cities() {
		notifySrv, err := infrastructure.NewTelegramNotifyService(bot, cnf.TelegramChat)
		if err != nil {
			log.Fatal().Err(err).Msg("Main → cannot create notifier")
		}

		tracker := application.NewPrayerTracker(
			city,
			clock,
			application.NewDayState(city, scheduleSrv, notifySrv, validations),
			application.NewNightState(city, scheduleSrv, notifySrv, validations),
		)
		g.Go(func() error {
			tracker.Run(ctx, cnf.PollInterval)
			return nil
		})
	}

	handler := application.NewCommandHandler(defaultCity, scheduleSrv, twilightSrv, validations, clock)
	commandSrv, err := infrastructure.NewTelegramCommandService(bot, cnf.TelegramChat, handler)
	if err != nil {
		log.Fatal().Err(err).Msg("Main → cannot create command service")
	}
	g.Go(func() error {
		return commandSrv.Run(ctx)
	})

	log.Info().Str("bot", bot.Self.UserName).Str("default_city", string(defaultCity.ID)).Msg("salah tracker started")

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Main → stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("salah tracker stopped")
}
