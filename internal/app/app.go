// Package app initializes all application components.
// app.go is the assembly point: database pool, repositories, services,
// handlers, filters, bot and scheduler, wired in dependency order.
package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/bot"
	"spesebot.it/telegram-bot/internal/bot/filters"
	"spesebot.it/telegram-bot/internal/config"
	"spesebot.it/telegram-bot/internal/db/postgres"
	"spesebot.it/telegram-bot/internal/features/categories"
	"spesebot.it/telegram-bot/internal/features/classifier"
	"spesebot.it/telegram-bot/internal/features/reports"
	"spesebot.it/telegram-bot/internal/features/settings"
	"spesebot.it/telegram-bot/internal/features/transactions"
	"spesebot.it/telegram-bot/internal/jobs"
)

// App holds all application components.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
	BotAPI    *tgbotapi.BotAPI
}

// New creates and initializes the application.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. Database ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating Telegram API: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("Authorized as @%s", botAPI.Self.UserName)

	// === 3. Repositories ===
	categoryRepo := categories.NewRepository(pool)
	settingsRepo := settings.NewRepository(pool)
	reportRepo := reports.NewRepository(pool)
	transactionRepo := transactions.NewRepository(pool)

	// === 4. Services ===
	categoryService := categories.NewService(categoryRepo)
	settingsService := settings.NewService(settingsRepo, cfg.DefaultCurrency)
	classifierService := classifier.NewService(transactionRepo)
	transactionService := transactions.NewService(transactionRepo, categoryService)
	reportService := reports.NewService(reportRepo)

	// === 5. Handlers ===
	categoryHandler := categories.NewHandler(categoryService, botAPI)
	settingsHandler := settings.NewHandler(settingsService, botAPI)
	transactionHandler := transactions.NewHandler(
		transactionService, classifierService, categoryService, settingsService, botAPI,
	)
	reportHandler := reports.NewHandler(reportService, botAPI)

	// === 6. Filters ===
	chatFilter := filters.NewChatFilter()

	// === 7. Bot ===
	b := bot.New(
		botAPI, cfg,
		transactionHandler,
		categoryHandler,
		settingsHandler,
		reportHandler,
		settingsService,
		chatFilter,
	)

	// === 8. Scheduler ===
	scheduler := jobs.NewScheduler(categoryService, cfg.AppTimezone)

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        pool,
		BotAPI:    botAPI,
	}, nil
}

// runMigrations applies all SQL migrations in order.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.InitMigrations(ctx, pool); err != nil {
		return err
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Transactions},
		{2, migration002Categories},
		{3, migration003Settings},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
		log.Infof("Migration %d applied", m.version)
	}

	return nil
}

// Migrations are embedded so the deploy stays a single binary.

// Identity is (user_id, ts, amount): same user, same capture second, same
// amount collapse into one row.
var migration001Transactions = `
CREATE TABLE IF NOT EXISTS transactions (
    user_id BIGINT NOT NULL,
    ts BIGINT NOT NULL,
    date DATE NOT NULL,
    amount DOUBLE PRECISION NOT NULL,
    description TEXT,
    category TEXT,
    PRIMARY KEY (user_id, ts, amount)
);
CREATE INDEX IF NOT EXISTS idx_transactions_user_ts ON transactions(user_id, ts DESC);
`

var migration002Categories = `
CREATE TABLE IF NOT EXISTS categories (
    user_id BIGINT NOT NULL,
    name TEXT NOT NULL,
    parent TEXT,
    times_used INTEGER DEFAULT 0,
    PRIMARY KEY (user_id, name)
);
`

var migration003Settings = `
CREATE TABLE IF NOT EXISTS settings (
    user_id BIGINT PRIMARY KEY,
    setting1 TEXT,
    setting2 TEXT,
    setting3 TEXT,
    setting4 TEXT,
    setting5 TEXT
);
`
