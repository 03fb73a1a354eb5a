// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/GetSky/SalahTracker/internal/application"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifyService struct {
	bot          sender
	telegramChat int64

	mu            sync.Mutex
	lastMessageID int
	lastText      string
}

// NewTelegramNotifyService returns a notifier posting to one chat. Each tracker
// needs its own notifier since the last message is remembered per instance.
func NewTelegramNotifyService(bot *tgbotapi.BotAPI, receiverKey string) (application.NotifyService, error) {
	chat, err := parseChatID(receiverKey)
	if err != nil {
		return nil, err
	}

	return newTelegramNotifyService(bot, chat), nil
}

func newTelegramNotifyService(bot sender, chat int64) *telegramNotifyService {
	return &telegramNotifyService{
		bot:          bot,
		telegramChat: chat,
	}
}

func parseChatID(receiverKey string) (int64, error) {
	chat, err := strconv.ParseInt(receiverKey, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("TelegramNotifyService → failed to parse receiverKey: %w", err)
	}
	return chat, nil
}

func (c *telegramNotifyService) SendNewMessage(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sendNew(text)
}

// UpdateLastMessage edits the last sent message. Without one, for example after a
// restart, a new message is sent instead. Identical text is not sent again.
func (c *telegramNotifyService) UpdateLastMessage(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastMessageID == 0 {
		return c.sendNew(text)
	}
	if text == c.lastText {
		return nil
	}

	edit := tgbotapi.NewEditMessageText(c.telegramChat, c.lastMessageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := c.bot.Send(edit); err != nil {
		return fmt.Errorf("TelegramNotifyService → %w", err)
	}
	c.lastText = text

	return nil
}

func (c *telegramNotifyService) sendNew(text string) error {
	message := tgbotapi.NewMessage(c.telegramChat, text)
	message.ParseMode = tgbotapi.ModeMarkdown

	msg, err := c.bot.Send(message)
	if err != nil {
		return fmt.Errorf("TelegramNotifyService → %w", err)
	}
	c.lastMessageID = msg.MessageID
	c.lastText = text

	return nil
}
