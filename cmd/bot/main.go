package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No log file yet, stderr is the only channel.
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logFile := logger.Init(cfg)
	defer logFile.Close()
	log := logger.Get()
	mainLogger := log.WithField("component", "main")

	if err := cfg.CheckTokens(); err != nil {
		mainLogger.WithError(err).Fatal("Missing required environment variables, exiting")
	}
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Schedule: %s", cfg.LogLevel, cfg.Environment, cfg.PollSchedule)

	reviewClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.PracticumTimeout)
	mainLogger.Info("Practicum client initialized.")

	telegramClient, err := telegram.NewTelebotAdapter(cfg.TelegramToken, cfg.TelegramAPIURL, false)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	mainLogger.Info("Telegram client initialized.")

	poller := app.NewPollerService(
		reviewClient,
		telegramClient,
		cfg.TelegramChatID,
		time.Now().Unix(),
		log.WithField("component", "poller"),
	)

	pollScheduler, err := scheduler.NewPollScheduler(poller.Poll, cfg.PollSchedule, log.WithField("component", "scheduler"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create poll scheduler")
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Application setup complete. Poller is starting...")
	if err := pollScheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poll loop exited unexpectedly")
		os.Exit(1)
	}
	mainLogger.Info("Application shut down gracefully.")
}
