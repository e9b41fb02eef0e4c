package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cinescout/cinescout/internal/config"
	"github.com/cinescout/cinescout/internal/format"
	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray

	styleTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // cyan bold
	styleRating = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// newProvider creates the TMDb metadata client from configuration.
func newProvider(cfg *config.Config, logger *slog.Logger) *tmdb.Client {
	if cfg.TMDb.RelayURL != "" {
		logger.Info("relaying TMDb requests", slog.String("relay", cfg.TMDb.RelayURL))
	}
	return tmdb.New(cfg.TMDb.APIKey, cfg.TMDb.RelayURL, logger)
}

// renderMovieLines renders a numbered, styled movie list for one-shot
// command output.
func renderMovieLines(movies []tmdb.Movie) string {
	var sb strings.Builder
	for i, m := range movies {
		sb.WriteString(fmt.Sprintf("%2d. ", i+1))
		sb.WriteString(styleTitle.Render(m.Title))
		sb.WriteString(styleDim.Render(" (" + format.Year(m.ReleaseDate) + ")"))
		sb.WriteString("  " + styleRating.Render("★ "+format.Rating(m.VoteAverage)))
		if m.OriginalLanguage != "" {
			sb.WriteString(styleDim.Render("  " + m.OriginalLanguage))
		}
		sb.WriteString(styleDim.Render(fmt.Sprintf("  #%d", m.ID)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderDetailLines renders a full detail record for one-shot command output.
func renderDetailLines(d *tmdb.MovieDetails) string {
	var sb strings.Builder

	sb.WriteString(styleHeader.Render(d.Title + " (" + format.Year(d.ReleaseDate) + ")"))
	sb.WriteString("\n")
	if d.Tagline != "" {
		sb.WriteString(styleDim.Render(d.Tagline) + "\n")
	}

	meta := []string{
		format.Runtime(d.Runtime),
		"★ " + format.Rating(d.VoteAverage),
	}
	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		meta = append(meta, strings.Join(names, ", "))
	}
	sb.WriteString(styleInfo.Render(strings.Join(meta, "  ·  ")) + "\n")

	if d.Overview != "" {
		sb.WriteString("\n" + lipgloss.NewStyle().Width(78).Render(d.Overview) + "\n")
	}

	if len(d.Credits.Cast) > 0 {
		cast := d.Credits.Cast
		if len(cast) > 8 {
			cast = cast[:8]
		}
		names := make([]string, len(cast))
		for i, c := range cast {
			names[i] = c.Name
		}
		sb.WriteString("\n" + styleDim.Render("Cast: "+strings.Join(names, ", ")) + "\n")
	}

	if url := tmdb.PosterURL(d.PosterPath, "w500"); url != "" {
		sb.WriteString(styleDim.Render("Poster: "+url) + "\n")
	}

	return sb.String()
}
