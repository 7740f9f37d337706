package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/filmotheque/filmotheque/internal/config"
	"github.com/filmotheque/filmotheque/internal/frontend/telegram"
)

// newTelegramCmd returns the "telegram" subcommand for running the bot.
func newTelegramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "telegram",
		Short: "Start the Telegram bot",
		Long:  "Start the Filmothèque Telegram bot for browsing the catalogue via Telegram.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTelegram()
		},
	}
}

func runTelegram() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if cfg.Telegram == nil {
		return errors.New(
			"telegram configuration is required: set telegram.bot_token in config or FILMOTHEQUE_TELEGRAM_BOT_TOKEN env var",
		)
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	client := initCatalog(cfg, logger)

	bot, err := telegram.New(
		cfg.Telegram.BotToken,
		cfg.Telegram.AllowedChatIDs,
		client,
		cfg.Browse.CardsPerCategory,
		logger,
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("telegram bot starting")
	return bot.Start(ctx)
}
