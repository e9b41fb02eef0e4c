package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cinescout/cinescout/internal/config"
	"github.com/cinescout/cinescout/internal/frontend/telegram"
)

// newTelegramCmd returns the "telegram" subcommand that runs the bot frontend.
func newTelegramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "telegram",
		Short: "Run the Telegram bot frontend",
		Long: "Start the Telegram bot. It answers /trending and /search commands\n" +
			"and treats any other text as a search query.",
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
		return fmt.Errorf("telegram is not configured (set telegram.bot_token)")
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	provider := newProvider(cfg, logger)

	bot, err := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.AllowedUserIDs, provider, logger)
	if err != nil {
		return fmt.Errorf("create telegram frontend: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return bot.Start(ctx)
}
