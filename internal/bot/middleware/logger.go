// Package middleware contains cross-cutting handlers for logging, panic
// recovery and rate limiting.
package middleware

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/common"
)

// logTextLimit caps how much of a message ends up in the logs.
const logTextLimit = 50

// truncateForLog shortens the text without splitting multi-byte runes;
// descriptions here are full of emoji and accented characters.
func truncateForLog(s string) string {
	t := common.Truncate(s, logTextLimit)
	if t != s {
		t += "..."
	}
	return t
}

// LogMessage logs an incoming text message: user, chat and the first
// 50 characters of the text.
func LogMessage(message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}

	text := truncateForLog(message.Text)

	log.WithFields(log.Fields{
		"user_id":  message.From.ID,
		"chat_id":  message.Chat.ID,
		"username": message.From.UserName,
		"text":     text,
	}).Debug("Incoming message")
}

// LogCallback logs an incoming button press with its raw payload.
func LogCallback(query *tgbotapi.CallbackQuery) {
	if query == nil || query.From == nil {
		return
	}

	log.WithFields(log.Fields{
		"user_id": query.From.ID,
		"data":    query.Data,
	}).Debug("Incoming callback")
}
