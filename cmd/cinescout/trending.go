package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cinescout/cinescout/internal/config"
)

func newTrendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show this week's trending movies",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTrending()
		},
	}
}

func runTrending() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	provider := newProvider(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	movies, err := provider.TrendingWeek(ctx)
	if err != nil {
		return fmt.Errorf("fetch trending: %w", err)
	}
	if len(movies) == 0 {
		fmt.Println(styleDim.Render("No trending movies right now."))
		return nil
	}

	fmt.Println(styleHeader.Render("Trending this week"))
	fmt.Print(renderMovieLines(movies))
	return nil
}
