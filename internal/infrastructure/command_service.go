// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"context"

	"github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/GetSky/SalahTracker/internal/application"
)

const failureReply = "Something went wrong, please try again later."

type updatesBot interface {
	sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type telegramCommandService struct {
	bot          updatesBot
	telegramChat int64
	handler      *application.CommandHandler
}

// NewTelegramCommandService answers commands sent to the bot from the configured
// chat. Messages from other chats are ignored.
func NewTelegramCommandService(bot *tgbotapi.BotAPI, receiverKey string, handler *application.CommandHandler) (application.CommandService, error) {
	chat, err := parseChatID(receiverKey)
	if err != nil {
		return nil, err
	}

	return newTelegramCommandService(bot, chat, handler), nil
}

func newTelegramCommandService(bot updatesBot, chat int64, handler *application.CommandHandler) *telegramCommandService {
	return &telegramCommandService{
		bot:          bot,
		telegramChat: chat,
		handler:      handler,
	}
}

// Run long-polls for updates until ctx is done.
func (c *telegramCommandService) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := c.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			c.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			c.handle(ctx, update)
		}
	}
}

func (c *telegramCommandService) handle(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}
	if msg.Chat == nil || msg.Chat.ID != c.telegramChat {
		log.Warn().Str("command", msg.Command()).Msg("command from unknown chat ignored")
		return
	}

	reply, err := c.handler.Handle(ctx, msg.Command(), msg.CommandArguments())
	if err != nil {
		log.Error().Err(err).Str("command", msg.Command()).Msg("command failed")
		reply = failureReply
	}

	out := tgbotapi.NewMessage(c.telegramChat, reply)
	out.ParseMode = tgbotapi.ModeMarkdown
	out.ReplyToMessageID = msg.MessageID
	if _, err := c.bot.Send(out); err != nil {
		log.Error().Err(err).Str("command", msg.Command()).Msg("TelegramCommandService → reply failed")
	}
}
