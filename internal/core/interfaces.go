package core

import (
	"context"

	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

// MetadataProvider defines the movie discovery operations every frontend
// (TUI, one-shot CLI, Telegram, MCP) is built on.
type MetadataProvider interface {
	// SearchMovies searches for movies by title and returns the first
	// page of results, unfiltered.
	SearchMovies(ctx context.Context, query string) ([]tmdb.Movie, error)

	// TrendingWeek returns this week's trending movies, capped at ten.
	TrendingWeek(ctx context.Context) ([]tmdb.Movie, error)

	// MovieDetails returns full details for a movie, including credits.
	MovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error)
}

// Frontend defines the interface for long-running user-facing frontends
// (Telegram, future Discord).
type Frontend interface {
	// Start starts the frontend. It blocks until ctx is canceled.
	Start(ctx context.Context) error

	// Stop stops the frontend.
	Stop(ctx context.Context) error

	// Name returns the frontend name (e.g. "telegram").
	Name() string
}
