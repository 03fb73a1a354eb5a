// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	mu     sync.Mutex
	sent   []tgbotapi.Chattable
	nextID int
	err    error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c)
	if edit, ok := c.(tgbotapi.EditMessageTextConfig); ok {
		return tgbotapi.Message{MessageID: edit.MessageID}, nil
	}
	b.nextID++
	return tgbotapi.Message{MessageID: 100 + b.nextID}, nil
}

func (b *fakeBot) messages() []tgbotapi.Chattable {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), b.sent...)
}

func TestNotifyServiceSendAndEdit(t *testing.T) {
	bot := &fakeBot{}
	srv := newTelegramNotifyService(bot, 42)

	require.NoError(t, srv.SendNewMessage("first"))
	require.NoError(t, srv.UpdateLastMessage("first, edited"))
	require.NoError(t, srv.UpdateLastMessage("first, edited"))
	require.NoError(t, srv.SendNewMessage("second"))
	require.NoError(t, srv.UpdateLastMessage("second, edited"))
	require.NoError(t, srv.UpdateLastMessage("second, edited again"))

	sent := bot.messages()
	require.Len(t, sent, 5)

	msg, ok := sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "first", msg.Text)
	assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)

	edit, ok := sent[1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), edit.ChatID)
	assert.Equal(t, 101, edit.MessageID)
	assert.Equal(t, "first, edited", edit.Text)
	assert.Equal(t, tgbotapi.ModeMarkdown, edit.ParseMode)

	edit, ok = sent[3].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 102, edit.MessageID)
	assert.Equal(t, "second, edited", edit.Text)

	// an edit keeps targeting the same message
	edit, ok = sent[4].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 102, edit.MessageID)
	assert.Equal(t, "second, edited again", edit.Text)
}

func TestNotifyServiceUpdateWithoutMessage(t *testing.T) {
	bot := &fakeBot{}
	srv := newTelegramNotifyService(bot, 42)

	require.NoError(t, srv.UpdateLastMessage("after restart"))

	sent := bot.messages()
	require.Len(t, sent, 1)
	msg, ok := sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "after restart", msg.Text)
}

func TestNotifyServiceErrors(t *testing.T) {
	boom := errors.New("boom")
	bot := &fakeBot{err: boom}
	srv := newTelegramNotifyService(bot, 42)

	err := srv.SendNewMessage("text")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "TelegramNotifyService → ")

	bot.err = nil
	require.NoError(t, srv.SendNewMessage("text"))
	bot.err = boom
	assert.ErrorIs(t, srv.UpdateLastMessage("other"), boom)

	// a failed edit is retried on the next update
	bot.err = nil
	require.NoError(t, srv.UpdateLastMessage("other"))
	assert.Len(t, bot.messages(), 2)
}

func TestParseChatID(t *testing.T) {
	chat, err := parseChatID("-1001234")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234), chat)

	_, err = parseChatID("chat")
	assert.ErrorContains(t, err, "failed to parse receiverKey")
}
