// handlers.go renders the category menu and runs the two text dialogs:
// whole-list replacement and single-category creation.
package categories

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/bot/actions"
)

// Handler handles the category management dialogs.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler creates the category handler.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// ShowMenu edits the pressed message into the category overview.
func (h *Handler) ShowMenu(ctx context.Context, query *tgbotapi.CallbackQuery) {
	cats, err := h.service.List(ctx, query.From.ID)
	if err != nil {
		log.WithError(err).Error("Listing categories failed")
		h.sendMessage(query.Message.Chat.ID, "❌ Errore nel caricamento delle categorie")
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📃 Nuova Lista", actions.DataNewCategoryList),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Nuova Categoria", actions.DataNewCategory),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Indietro", actions.DataMenu),
		),
	)

	msg := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID, query.Message.MessageID,
		"🏷️ CATEGORIE\n\n"+joinNames(cats), keyboard,
	)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Editing category menu failed")
	}
}

// PromptNewList asks for a newline-separated replacement list.
func (h *Handler) PromptNewList(query *tgbotapi.CallbackQuery) {
	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Inviami una nuova lista:")
	msg.ReplyMarkup = actions.BackKeyboard()
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Sending list prompt failed")
	}
}

// ApplyNewList replaces the whole category set from the message text and
// confirms with the resulting list.
func (h *Handler) ApplyNewList(ctx context.Context, message *tgbotapi.Message) {
	cats, err := h.service.ReplaceList(ctx, message.From.ID, message.Text)
	if err != nil {
		log.WithError(err).Error("Replacing category list failed")
		h.sendMessage(message.Chat.ID, "❌ Errore nel salvataggio della lista")
		return
	}

	h.sendMessage(message.Chat.ID, "Lista salvata!\n\n"+joinNames(cats))
}

// PromptNewCategory asks for one new category name.
func (h *Handler) PromptNewCategory(query *tgbotapi.CallbackQuery) {
	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Scrivi una nuova categoria:")
	msg.ReplyMarkup = actions.BackKeyboard()
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Sending category prompt failed")
	}
}

// ApplyNewCategory creates one category from the message text, confirms with
// the updated list and returns the created name so the caller can attach it
// to an active draft.
func (h *Handler) ApplyNewCategory(ctx context.Context, message *tgbotapi.Message) (string, error) {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		return "", nil
	}

	if err := h.service.Create(ctx, message.From.ID, name); err != nil {
		log.WithError(err).Error("Creating category failed")
		h.sendMessage(message.Chat.ID, "❌ Errore nella creazione della categoria")
		return "", err
	}

	cats, err := h.service.List(ctx, message.From.ID)
	if err != nil {
		return name, err
	}
	h.sendMessage(message.Chat.ID, "Categoria creata!\n\n"+joinNames(cats))
	return name, nil
}

func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Sending message failed")
	}
}

func joinNames(cats []*Category) string {
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return strings.Join(names, "\n")
}
