// handlers.go drives the reports menu and chart delivery.
package reports

import (
	"context"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/bot/actions"
	"spesebot.it/telegram-bot/internal/common"
	"spesebot.it/telegram-bot/internal/session"
)

// Handler handles the report dialogs.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates the report handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// ShowReportsMenu edits the pressed message into the month picker.
func (h *Handler) ShowReportsMenu(query *tgbotapi.CallbackQuery) {
	now := time.Now()
	msg := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID,
		"📊 REPORTS",
		actions.MonthKeyboard(actions.PrefixReports,
			common.CurrentMonth(now), common.PreviousMonth(now)),
	)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Editing reports menu failed")
	}
}

// ShowMonth analyzes the picked month and sends the spending chart.
// Rendering can take a moment, so the menu is replaced with a progress note
// first.
func (h *Handler) ShowMonth(ctx context.Context, sess *session.Session, query *tgbotapi.CallbackQuery, month string) {
	analysis, err := h.service.Analyze(ctx, sess.UserID, month)
	if err != nil {
		log.WithError(err).WithField("month", month).Error("Analyzing month failed")
		h.sendMessage(query.Message.Chat.ID, "❌ Errore nell'elaborazione del report")
		return
	}
	if analysis.Empty() {
		h.sendMessage(query.Message.Chat.ID, "Non ho trovato niente.")
		return
	}

	del := tgbotapi.NewDeleteMessage(query.Message.Chat.ID, query.Message.MessageID)
	if _, err := h.bot.Request(del); err != nil {
		log.WithError(err).Error("Deleting reports menu failed")
	}
	h.sendMessage(query.Message.Chat.ID, "Sto elaborando i dati, attendi.")

	path, err := RenderCategoryChart(analysis.ByCategory)
	if err != nil {
		log.WithError(err).Error("Rendering category chart failed")
		h.sendMessage(query.Message.Chat.ID, "❌ Errore nella generazione del grafico")
		return
	}
	h.sendPhoto(query.Message.Chat.ID, path)

	// The month filter matches the month number in any year; a second chart
	// only helps when it actually caught more than one month.
	if len(analysis.ByMonth) > 1 {
		path, err := RenderMonthChart(analysis.ByMonth)
		if err != nil {
			log.WithError(err).Error("Rendering month chart failed")
			return
		}
		h.sendPhoto(query.Message.Chat.ID, path)
	}
}

func (h *Handler) sendPhoto(chatID int64, path string) {
	defer os.Remove(path)

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	if _, err := h.bot.Send(photo); err != nil {
		log.WithError(err).Error("Sending chart failed")
	}
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Sending message failed")
	}
}
