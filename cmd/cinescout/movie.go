package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cinescout/cinescout/internal/config"
)

func newMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "movie [tmdb-id]",
		Short:   "Show full details for a movie",
		Long:    "Fetch and print a movie's details by TMDb ID, including genres, runtime, and cast.",
		Example: "  cinescout movie 550",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie ID %q", args[0])
			}
			return runMovie(id)
		},
	}
}

func runMovie(id int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	provider := newProvider(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	details, err := provider.MovieDetails(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch movie %d: %w", id, err)
	}

	fmt.Print(renderDetailLines(details))
	return nil
}
