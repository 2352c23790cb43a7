// Package bot holds the main bot module: polling, update routing and the
// conversation state machine. bot.go owns every state transition; the
// feature handlers only render and persist.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/bot/actions"
	"spesebot.it/telegram-bot/internal/bot/filters"
	"spesebot.it/telegram-bot/internal/bot/middleware"
	"spesebot.it/telegram-bot/internal/config"
	"spesebot.it/telegram-bot/internal/features/categories"
	"spesebot.it/telegram-bot/internal/features/reports"
	"spesebot.it/telegram-bot/internal/features/settings"
	"spesebot.it/telegram-bot/internal/features/transactions"
	"spesebot.it/telegram-bot/internal/session"
)

// Bot is the top-level structure tying all components together.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config

	chatFilter  *filters.ChatFilter
	rateLimiter *middleware.RateLimiter

	sessions *session.Manager

	transactionHandler *transactions.Handler
	categoryHandler    *categories.Handler
	settingsHandler    *settings.Handler
	reportHandler      *reports.Handler

	settingsService *settings.Service

	// caps how many updates are handled in parallel
	inflight chan struct{}
}

// New creates the bot with all its dependencies.
func New(
	api *tgbotapi.BotAPI,
	cfg *config.Config,
	transactionHandler *transactions.Handler,
	categoryHandler *categories.Handler,
	settingsHandler *settings.Handler,
	reportHandler *reports.Handler,
	settingsService *settings.Service,
	chatFilter *filters.ChatFilter,
) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	return &Bot{
		api:                api,
		cfg:                cfg,
		chatFilter:         chatFilter,
		rateLimiter:        middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		sessions:           session.NewManager(),
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		settingsHandler:    settingsHandler,
		reportHandler:      reportHandler,
		settingsService:    settingsService,
		inflight:           make(chan struct{}, maxInFlight),
	}
}

// Start begins polling Telegram for updates.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	log.WithFields(log.Fields{
		"max_inflight": b.cfg.BotMaxInflight,
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Bot started, waiting for messages...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Bot stopping (ctx done)...")
			b.api.StopReceivingUpdates()
			b.rateLimiter.Close()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("Updates channel closed, bot stopped")
				return
			}

			b.inflight <- struct{}{}
			go func(upd tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, upd)
			}(update)
		}
	}
}

// handleUpdate dispatches one Telegram update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}
	if update.Message != nil && update.Message.Text != "" {
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage routes a free-text message by the current conversation state.
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	middleware.LogMessage(message)

	if !b.chatFilter.CheckMessage(message) {
		return
	}
	if !b.rateLimiter.Allow(message.From.ID) {
		log.WithField("user_id", message.From.ID).Debug("rate limited")
		return
	}

	sess := b.sessions.Get(message.Chat.ID, message.From.ID)
	sess.Lock()
	defer sess.Unlock()

	if message.IsCommand() {
		b.handleCommand(ctx, sess, message)
		return
	}

	switch sess.State {
	case session.StateEditDescription:
		b.transactionHandler.ApplyDescription(sess, message)
		b.transactionHandler.ShowDraft(sess, message.Chat.ID, 0)
		sess.State = session.StateShow

	case session.StateEditCategory:
		b.transactionHandler.ApplyCategoryText(sess, message)
		b.transactionHandler.ShowDraft(sess, message.Chat.ID, 0)
		sess.State = session.StateShow

	case session.StateEditDate:
		// A malformed date re-prompts and stays on this step.
		if b.transactionHandler.ApplyDateText(sess, message) {
			b.transactionHandler.ShowDraft(sess, message.Chat.ID, 0)
			sess.State = session.StateShow
		}

	case session.StateEditAmount:
		// A non-numeric amount is dropped silently; the step stays open.
		if err := b.transactionHandler.ApplyAmount(sess, message); err == nil {
			b.transactionHandler.ShowDraft(sess, message.Chat.ID, 0)
			sess.State = session.StateShow
		}

	case session.StateCategoryNewList:
		b.categoryHandler.ApplyNewList(ctx, message)
		b.sendMainMenu(message.Chat.ID)
		sess.State = session.StateIdle

	case session.StateCategoryNew:
		name, err := b.categoryHandler.ApplyNewCategory(ctx, message)
		if err == nil && name != "" && sess.Draft != nil {
			// Reached from the draft's category picker: attach and resume.
			sess.Draft.Category = name
			b.transactionHandler.ShowDraft(sess, message.Chat.ID, 0)
			sess.State = session.StateShow
			return
		}
		b.sendMainMenu(message.Chat.ID)
		sess.State = session.StateIdle

	default:
		// Idle (or a button-only state): any "<amount> <description>" text
		// opens a fresh draft, anything else is ignored.
		if b.transactionHandler.StartDraft(ctx, sess, message) {
			sess.State = session.StateShow
		}
	}
}

// handleCommand handles slash commands. Commands reset the conversation.
func (b *Bot) handleCommand(ctx context.Context, sess *session.Session, message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "menu":
		b.hydrateCurrency(ctx, sess)
		sess.ClearDraft()
		b.sendMainMenu(message.Chat.ID)

	case "help":
		b.sendMessage(message.Chat.ID, helpText)
	}
}

// handleCallback routes a button press by payload and conversation state.
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Acknowledge immediately so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.WithError(err).Debug("Answering callback failed")
	}

	middleware.LogCallback(query)

	if !b.chatFilter.CheckCallback(query) {
		return
	}

	sess := b.sessions.Get(query.Message.Chat.ID, query.From.ID)
	sess.Lock()
	defer sess.Unlock()

	action := actions.Parse(query.Data)

	if action.IsEntryPoint() {
		b.handleEntryPoint(ctx, sess, query, action)
		return
	}

	switch sess.State {
	case session.StateShow:
		b.handleShowAction(ctx, sess, query, action)

	case session.StateEditCategory:
		switch action.Kind {
		case actions.PickCategory:
			b.transactionHandler.ApplyCategoryButton(sess, query, action.Arg)
			b.transactionHandler.ShowDraft(sess, query.Message.Chat.ID, query.Message.MessageID)
			sess.State = session.StateShow
		case actions.Back:
			b.transactionHandler.ShowDraft(sess, query.Message.Chat.ID, query.Message.MessageID)
			sess.State = session.StateShow
		}

	case session.StateEditDate:
		switch action.Kind {
		case actions.PickDate:
			if action.Arg == actions.ArgCustomDate {
				b.transactionHandler.PromptCustomDate(query)
				return
			}
			if b.transactionHandler.ApplyDateButton(sess, query, action.Arg) {
				b.transactionHandler.ShowDraft(sess, query.Message.Chat.ID, query.Message.MessageID)
				sess.State = session.StateShow
			}
		case actions.Back:
			b.transactionHandler.ShowDraft(sess, query.Message.Chat.ID, query.Message.MessageID)
			sess.State = session.StateShow
		}

	case session.StateEditDescription, session.StateEditAmount:
		if action.Kind == actions.Back {
			b.transactionHandler.ShowDraft(sess, query.Message.Chat.ID, query.Message.MessageID)
			sess.State = session.StateShow
		}

	case session.StateCategoryNewList, session.StateCategoryNew:
		if action.Kind == actions.Back {
			b.deleteMessage(query)
			b.sendMainMenu(query.Message.Chat.ID)
			sess.State = session.StateIdle
		}

	case session.StateSetCurrency:
		switch action.Kind {
		case actions.PickCurrency:
			b.settingsHandler.ApplyCurrency(ctx, sess, query, action.Arg)
			sess.State = session.StateIdle
		case actions.Back:
			b.settingsHandler.ShowMenu(sess, query)
			sess.State = session.StateIdle
		}

	case session.StateTransactions:
		switch action.Kind {
		case actions.ListMonth:
			b.transactionHandler.ShowMonth(ctx, sess, query, action.Arg)
			sess.State = session.StateIdle
		case actions.Back:
			b.deleteMessage(query)
			b.sendMainMenu(query.Message.Chat.ID)
			sess.State = session.StateIdle
		}

	case session.StateReports:
		switch action.Kind {
		case actions.ReportMonth:
			if b.cfg.FeatureReportsEnabled {
				b.reportHandler.ShowMonth(ctx, sess, query, action.Arg)
			} else {
				b.sendMessage(query.Message.Chat.ID, "📊 Reports momentaneamente disattivati")
			}
			sess.State = session.StateIdle
		case actions.Back:
			b.deleteMessage(query)
			b.sendMainMenu(query.Message.Chat.ID)
			sess.State = session.StateIdle
		}

	default:
		log.WithFields(log.Fields{
			"state": sess.State,
			"data":  query.Data,
		}).Debug("Callback ignored in current state")
	}
}

// handleEntryPoint runs the actions valid in any state. They restart the
// flow but deliberately leave a live draft alone.
func (b *Bot) handleEntryPoint(ctx context.Context, sess *session.Session, query *tgbotapi.CallbackQuery, action actions.Action) {
	switch action.Kind {
	case actions.Menu:
		b.deleteMessage(query)
		b.sendMainMenu(query.Message.Chat.ID)
		sess.State = session.StateIdle

	case actions.Help:
		b.deleteMessage(query)
		b.sendMessage(query.Message.Chat.ID, helpText)
		sess.State = session.StateIdle

	case actions.CategoriesMenu:
		b.categoryHandler.ShowMenu(ctx, query)
		sess.State = session.StateIdle

	case actions.TransactionsMenu:
		b.transactionHandler.ShowTransactionsMenu(query)
		sess.State = session.StateTransactions

	case actions.ReportsMenu:
		b.reportHandler.ShowReportsMenu(query)
		sess.State = session.StateReports

	case actions.SettingsMenu:
		b.hydrateCurrency(ctx, sess)
		b.settingsHandler.ShowMenu(sess, query)
		sess.State = session.StateIdle

	case actions.CurrencyMenu:
		b.hydrateCurrency(ctx, sess)
		b.settingsHandler.PromptCurrency(sess, query)
		sess.State = session.StateSetCurrency

	case actions.NewCategoryList:
		b.categoryHandler.PromptNewList(query)
		sess.State = session.StateCategoryNewList

	case actions.NewCategory:
		b.categoryHandler.PromptNewCategory(query)
		sess.State = session.StateCategoryNew
	}
}

// handleShowAction runs the review-keyboard actions on an active draft.
func (b *Bot) handleShowAction(ctx context.Context, sess *session.Session, query *tgbotapi.CallbackQuery, action actions.Action) {
	if sess.Draft == nil {
		log.WithField("data", query.Data).Warn("Draft action without a draft")
		sess.State = session.StateIdle
		return
	}

	switch action.Kind {
	case actions.EditCategory:
		b.transactionHandler.PromptCategory(ctx, sess, query)
		sess.State = session.StateEditCategory

	case actions.EditDate:
		b.transactionHandler.PromptDate(query)
		sess.State = session.StateEditDate

	case actions.EditDescription:
		b.transactionHandler.PromptDescription(query)
		sess.State = session.StateEditDescription

	case actions.EditAmount:
		b.transactionHandler.PromptAmount(query)
		sess.State = session.StateEditAmount

	case actions.Save:
		// The draft survives a failed commit so save can be retried.
		if b.transactionHandler.Save(ctx, sess, query) {
			sess.ClearDraft()
		}

	case actions.Cancel:
		b.transactionHandler.Cancel(query)
		sess.ClearDraft()
	}
}

// hydrateCurrency refreshes the session's cached currency symbol.
func (b *Bot) hydrateCurrency(ctx context.Context, sess *session.Session) {
	sess.Currency = b.settingsService.Currency(ctx, sess.UserID)
}

func (b *Bot) deleteMessage(query *tgbotapi.CallbackQuery) {
	del := tgbotapi.NewDeleteMessage(query.Message.Chat.ID, query.Message.MessageID)
	if _, err := b.api.Request(del); err != nil {
		log.WithError(err).Debug("Deleting message failed")
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Sending message failed")
	}
}
