// handlers.go renders the settings menu and the currency picker.
package settings

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/bot/actions"
	"spesebot.it/telegram-bot/internal/session"
)

// Handler handles the settings dialogs.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates the settings handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// ShowMenu edits the pressed message into the settings overview.
func (h *Handler) ShowMenu(sess *session.Session, query *tgbotapi.CallbackQuery) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📃 Cambia Valuta (%s)", sess.Currency), actions.DataCurrencyMenu,
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Indietro", actions.DataMenu),
		),
	)

	msg := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID, "⚙️ IMPOSTAZIONI", keyboard,
	)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Editing settings menu failed")
	}
}

// PromptCurrency shows the preset symbol picker.
func (h *Handler) PromptCurrency(sess *session.Session, query *tgbotapi.CallbackQuery) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("€", actions.PrefixCurrency+"€"),
			tgbotapi.NewInlineKeyboardButtonData("EUR", actions.PrefixCurrency+"EUR"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("$", actions.PrefixCurrency+"$"),
			tgbotapi.NewInlineKeyboardButtonData("USD", actions.PrefixCurrency+"USD"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌", actions.PrefixCurrency+"none"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Indietro", actions.DataBack),
		),
	)

	msg := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID,
		fmt.Sprintf("Valuta corrente: %s", sess.Currency), keyboard,
	)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Editing currency picker failed")
	}
}

// ApplyCurrency persists the picked symbol ("none" disables it), refreshes
// the session cache and returns to the settings overview.
func (h *Handler) ApplyCurrency(ctx context.Context, sess *session.Session, query *tgbotapi.CallbackQuery, symbol string) {
	var stored *string
	if symbol != "none" {
		stored = &symbol
	}

	if err := h.service.SetCurrency(ctx, sess.UserID, stored); err != nil {
		log.WithError(err).Error("Saving currency failed")
		h.sendMessage(query.Message.Chat.ID, "❌ Errore nel salvataggio della valuta")
		return
	}

	sess.Currency = ""
	if stored != nil {
		sess.Currency = *stored
	}

	h.ShowMenu(sess, query)
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Sending message failed")
	}
}
