package actions

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// BackKeyboard is the single 🔙 button shown under free-text prompts.
func BackKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Indietro", DataBack),
		),
	)
}

// EditingKeyboard is the review keyboard shown under a draft.
func EditingKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏷️ Cambia categoria", DataEditCategory),
			tgbotapi.NewInlineKeyboardButtonData("🗓️ Cambia data", DataEditDate),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Cambia descrizione", DataEditDescription),
			tgbotapi.NewInlineKeyboardButtonData("💸 Cambia importo", DataEditAmount),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Annulla", DataCancel),
			tgbotapi.NewInlineKeyboardButtonData("✅ Salva", DataSave),
		),
	)
}

// MonthKeyboard offers current / previous month shortcuts for a prefixed
// payload family (transazioni_ or reports_).
func MonthKeyboard(prefix, currentMonth, previousMonth string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Mese corrente", prefix+currentMonth),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Mese scorso", prefix+previousMonth),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Indietro", DataBack),
		),
	)
}
