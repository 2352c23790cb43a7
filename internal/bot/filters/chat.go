// Package filters gates which updates the bot handles at all.
package filters

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ChatFilter admits only private chats with real users. The tracker is
// strictly personal: group chats and other bots are ignored.
type ChatFilter struct{}

// NewChatFilter creates the access filter.
func NewChatFilter() *ChatFilter {
	return &ChatFilter{}
}

// CheckMessage reports whether a message should be handled.
func (f *ChatFilter) CheckMessage(message *tgbotapi.Message) bool {
	if message == nil || message.Chat == nil {
		log.WithField("component", "ChatFilter").Warn("nil message/chat")
		return false
	}
	if message.From == nil {
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   message.Chat.ID,
			"chat_type": message.Chat.Type,
		}).Warn("nil message.From (service/channel message?)")
		return false
	}
	if message.From.IsBot {
		return false
	}
	if !message.Chat.IsPrivate() {
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   message.Chat.ID,
			"chat_type": message.Chat.Type,
		}).Debug("non-private chat ignored")
		return false
	}
	return true
}

// CheckCallback reports whether a button press should be handled.
// The attached message was sent by the bot itself, so only the chat type and
// the pressing user are checked.
func (f *ChatFilter) CheckCallback(query *tgbotapi.CallbackQuery) bool {
	if query == nil || query.From == nil || query.Message == nil || query.Message.Chat == nil {
		return false
	}
	if query.From.IsBot {
		return false
	}
	if !query.Message.Chat.IsPrivate() {
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   query.Message.Chat.ID,
			"chat_type": query.Message.Chat.Type,
		}).Debug("non-private chat ignored")
		return false
	}
	return true
}
