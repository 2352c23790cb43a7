// handlers.go runs the draft editing conversation and the monthly listing.
package transactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/bot/actions"
	"spesebot.it/telegram-bot/internal/common"
	"spesebot.it/telegram-bot/internal/features/categories"
	"spesebot.it/telegram-bot/internal/features/classifier"
	"spesebot.it/telegram-bot/internal/features/settings"
	"spesebot.it/telegram-bot/internal/session"
)

// api is the slice of the Telegram client the handler uses; satisfied by
// tgbotapi.BotAPI.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Handler handles the draft conversation and the listing menu.
type Handler struct {
	service    *Service
	classifier *classifier.Service
	categories *categories.Service
	settings   *settings.Service
	bot        api
}

// NewHandler creates the transaction handler.
func NewHandler(service *Service, classifier *classifier.Service, categories *categories.Service, settings *settings.Service, bot api) *Handler {
	return &Handler{
		service:    service,
		classifier: classifier,
		categories: categories,
		settings:   settings,
		bot:        bot,
	}
}

// StartDraft tries to open a new draft from a free-text message. A message
// whose first token is not a number is ignored and false is returned.
// When the description resembles one seen before, its category is
// pre-filled.
func (h *Handler) StartDraft(ctx context.Context, sess *session.Session, message *tgbotapi.Message) bool {
	draft, ok := session.ParseDraft(message.Text, time.Now())
	if !ok {
		return false
	}

	if draft.Description != "" {
		category, err := h.classifier.Suggest(ctx, sess.UserID, strings.ToLower(draft.Description))
		if err != nil {
			log.WithError(err).Warn("Category suggestion failed")
		} else {
			draft.Category = category
		}
	}

	sess.Currency = h.settings.Currency(ctx, sess.UserID)
	sess.Draft = draft

	msg := tgbotapi.NewMessage(message.Chat.ID,
		"La tua transazione:\n\n"+draft.Render(sess.Currency))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = actions.EditingKeyboard()
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Sending draft failed")
	}
	return true
}

// ShowDraft re-renders the draft with the editing keyboard. With a message
// id it edits in place, otherwise it sends a fresh message.
func (h *Handler) ShowDraft(sess *session.Session, chatID int64, messageID int) {
	text := sess.Draft.Render(sess.Currency) + "\nCosa vuoi fare?"
	keyboard := actions.EditingKeyboard()

	if messageID > 0 {
		msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := h.bot.Send(msg); err != nil {
			log.WithError(err).Error("Editing draft failed")
		}
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Sending draft failed")
	}
}

// PromptDescription asks for a replacement description.
func (h *Handler) PromptDescription(query *tgbotapi.CallbackQuery) {
	h.promptText(query.Message.Chat.ID, "Inserisci una nuova descrizione:")
}

// ApplyDescription stores the typed description on the draft.
func (h *Handler) ApplyDescription(sess *session.Session, message *tgbotapi.Message) {
	sess.Draft.Description = strings.TrimSpace(message.Text)
	h.sendMessage(message.Chat.ID, "Descrizione cambiata!")
}

// PromptAmount asks for a replacement amount.
func (h *Handler) PromptAmount(query *tgbotapi.CallbackQuery) {
	h.promptText(query.Message.Chat.ID, "Inserisci un nuovo importo:")
}

// ApplyAmount stores the typed amount. Non-numeric input is dropped: the
// draft keeps its previous amount and no reply is sent.
func (h *Handler) ApplyAmount(sess *session.Session, message *tgbotapi.Message) error {
	if err := sess.Draft.SetAmount(message.Text); err != nil {
		log.WithFields(log.Fields{
			"chat_id": message.Chat.ID,
			"text":    message.Text,
		}).Error("Amount not numeric, keeping previous value")
		return err
	}
	h.sendMessage(message.Chat.ID, "Importo cambiato!")
	return nil
}

// PromptDate offers today/yesterday shortcuts plus free-text entry.
func (h *Handler) PromptDate(query *tgbotapi.CallbackQuery) {
	now := time.Now()
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Oggi",
				actions.PrefixDate+now.Format(common.DateLayout)),
			tgbotapi.NewInlineKeyboardButtonData("Ieri",
				actions.PrefixDate+now.AddDate(0, 0, -1).Format(common.DateLayout)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Data specifica",
				actions.PrefixDate+actions.ArgCustomDate),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Indietro", actions.DataBack),
		),
	)

	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Seleziona una nuova data:")
	msg.ReplyMarkup = keyboard
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Sending date picker failed")
	}
}

// PromptCustomDate asks for a free-text date.
func (h *Handler) PromptCustomDate(query *tgbotapi.CallbackQuery) {
	h.promptText(query.Message.Chat.ID, "Inserisci una data nel formato YYYY-MM-DD:")
}

// ApplyDateText stores a typed date. On a malformed date the user is
// re-prompted and false is returned so the conversation stays on this step.
func (h *Handler) ApplyDateText(sess *session.Session, message *tgbotapi.Message) bool {
	return h.applyDate(sess, message.Chat.ID, message.Text)
}

// ApplyDateButton stores a date coming from a shortcut button. The payload
// is trusted no more than typed text: a malformed one re-prompts too.
func (h *Handler) ApplyDateButton(sess *session.Session, query *tgbotapi.CallbackQuery, date string) bool {
	return h.applyDate(sess, query.Message.Chat.ID, date)
}

func (h *Handler) applyDate(sess *session.Session, chatID int64, date string) bool {
	if err := sess.Draft.SetDate(date); err != nil {
		msg := tgbotapi.NewMessage(chatID,
			"Data non valida, inserisci una data nel formato YYYY-MM-DD:")
		msg.ReplyMarkup = actions.BackKeyboard()
		if _, err := h.bot.Send(msg); err != nil {
			log.WithError(err).Error("Sending date re-prompt failed")
		}
		return false
	}
	h.sendMessage(chatID, "Data cambiata!")
	return true
}

// PromptCategory shows the user's categories ranked by usage, two per row,
// plus shortcuts to create a category or go back. Typing a name works too.
func (h *Handler) PromptCategory(ctx context.Context, sess *session.Session, query *tgbotapi.CallbackQuery) {
	cats, err := h.categories.List(ctx, sess.UserID)
	if err != nil {
		log.WithError(err).Error("Listing categories failed")
		h.sendMessage(query.Message.Chat.ID, "❌ Errore nel caricamento delle categorie")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range cats {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%s (%d)", c.Name, c.TimesUsed),
			actions.PrefixCategory+c.Name,
		))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Nuova categoria", actions.DataNewCategory),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Indietro", actions.DataBack),
		),
	)

	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Inserisci una nuova categoria:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Sending category picker failed")
	}
}

// ApplyCategoryText stores a typed category name on the draft.
func (h *Handler) ApplyCategoryText(sess *session.Session, message *tgbotapi.Message) {
	h.applyCategory(sess, message.Chat.ID, message.Text)
}

// ApplyCategoryButton stores a picked category name on the draft.
func (h *Handler) ApplyCategoryButton(sess *session.Session, query *tgbotapi.CallbackQuery, name string) {
	h.applyCategory(sess, query.Message.Chat.ID, name)
}

func (h *Handler) applyCategory(sess *session.Session, chatID int64, name string) {
	sess.Draft.Category = strings.TrimSpace(name)
	h.sendMessage(chatID, "Categoria cambiata!")
}

// Save commits the draft and freezes the message into a confirmation.
// Reports whether the commit persisted: on failure the draft must survive so
// the user can press save again.
func (h *Handler) Save(ctx context.Context, sess *session.Session, query *tgbotapi.CallbackQuery) bool {
	if err := h.service.Commit(ctx, sess.UserID, sess.Draft); err != nil {
		log.WithError(err).Error("Committing transaction failed")
		h.sendMessage(query.Message.Chat.ID, "❌ Errore nel salvataggio della transazione, riprova.")
		return false
	}

	msg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID, query.Message.MessageID,
		"Transazione salvata!\n\n"+sess.Draft.Render(sess.Currency),
	)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Editing save confirmation failed")
	}
	return true
}

// Cancel discards the draft message entirely.
func (h *Handler) Cancel(query *tgbotapi.CallbackQuery) {
	del := tgbotapi.NewDeleteMessage(query.Message.Chat.ID, query.Message.MessageID)
	if _, err := h.bot.Request(del); err != nil {
		log.WithError(err).Error("Deleting draft message failed")
	}
}

// ShowTransactionsMenu edits the pressed message into the month picker.
func (h *Handler) ShowTransactionsMenu(query *tgbotapi.CallbackQuery) {
	now := time.Now()
	msg := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID,
		"💼 TRANSAZIONI",
		actions.MonthKeyboard(actions.PrefixTransactions,
			common.CurrentMonth(now), common.PreviousMonth(now)),
	)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Editing transactions menu failed")
	}
}

// ShowMonth sends the monthly listing as a monospace table.
func (h *Handler) ShowMonth(ctx context.Context, sess *session.Session, query *tgbotapi.CallbackQuery, month string) {
	txs, err := h.service.ListMonth(ctx, sess.UserID, month)
	if err != nil {
		log.WithError(err).WithField("month", month).Error("Listing month failed")
		h.sendMessage(query.Message.Chat.ID, "❌ Errore nel caricamento delle transazioni")
		return
	}
	if len(txs) == 0 {
		h.sendMessage(query.Message.Chat.ID, "Non ho trovato niente.")
		return
	}

	sess.Currency = h.settings.Currency(ctx, sess.UserID)
	table := RenderMonthTable(txs, sess.Currency)

	msg := tgbotapi.NewMessage(query.Message.Chat.ID,
		`<pre><code class="text">`+table+`</code></pre>`)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Sending month table failed")
	}
}

func (h *Handler) promptText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = actions.BackKeyboard()
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Sending prompt failed")
	}
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Sending message failed")
	}
}
