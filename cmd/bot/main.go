// Package main is the bot entry point.
// It loads the configuration, initializes the application and starts it,
// with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/app"
	"spesebot.it/telegram-bot/internal/config"
)

func main() {
	setupLogging()

	// Local runs keep secrets in .env; in Docker the file simply isn't there.
	_ = godotenv.Load()

	log.Info("=== Bot starting ===")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Loading configuration failed")
	}

	level, err := log.ParseLevel(cfg.AppLogLevel)
	if err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Initializing application failed")
	}
	defer application.DB.Close()

	if cfg.FeatureReconcileEnabled {
		application.Scheduler.Start(ctx)
		defer application.Scheduler.Stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go application.Bot.Start(ctx)

	log.Info("=== Bot ready ===")

	sig := <-quit
	log.Infof("Signal %s received, shutting down...", sig)

	cancel()

	log.Info("=== Bot stopped ===")
}

// setupLogging sets the log format.
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
