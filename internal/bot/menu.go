// menu.go renders the main menu and the help text.
package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/bot/actions"
)

const helpText = `Per registrare una spesa scrivimi importo e descrizione, ad esempio:

12 kebab da ciccio

Poi potrai cambiare categoria, data, descrizione o importo prima di salvare.

Dal menu puoi gestire le categorie, vedere le transazioni del mese, generare i report e impostare la valuta.`

// sendMainMenu sends the top-level navigation keyboard.
func (b *Bot) sendMainMenu(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", actions.DataHelp),
			tgbotapi.NewInlineKeyboardButtonData("🏷️ Categorie", actions.DataCategoriesMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💼 Transazioni", actions.DataTransactionsMenu),
			tgbotapi.NewInlineKeyboardButtonData("📊 Reports", actions.DataReportsMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Impostazioni", actions.DataSettingsMenu),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "Cosa vuoi fare?")
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Sending main menu failed")
	}
}
