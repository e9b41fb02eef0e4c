package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cinescout/cinescout/internal/config"
	"github.com/cinescout/cinescout/internal/core"
	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [title]",
		Short: "Search for movies by title",
		Long:  "Run a one-shot title search and print the first page of results.",
		Example: `  cinescout search "blade runner"
  cinescout search dune`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "))
		},
	}
}

func runSearch(query string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	provider := newProvider(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(newSearchModel(ctx, provider, query))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run search: %w", err)
	}

	sm, ok := m.(searchModel)
	if !ok {
		return fmt.Errorf("unexpected model type from tea program")
	}
	return sm.err
}

// searchDoneMsg carries the search outcome back to the TUI.
type searchDoneMsg struct {
	movies []tmdb.Movie
	err    error
}

type searchModel struct {
	ctx      context.Context
	provider core.MetadataProvider
	query    string
	spinner  spinner.Model
	movies   []tmdb.Movie
	err      error
	done     bool
}

func newSearchModel(ctx context.Context, provider core.MetadataProvider, query string) searchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo
	return searchModel{
		ctx:      ctx,
		provider: provider,
		query:    query,
		spinner:  s,
	}
}

func (m searchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runQuery())
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case searchDoneMsg:
		m.movies = msg.movies
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m searchModel) View() string {
	if m.done {
		if m.err != nil {
			return styleError.Render("Error: "+m.err.Error()) + "\n"
		}
		if len(m.movies) == 0 {
			return styleDim.Render("No movies found for \""+m.query+"\"") + "\n"
		}
		return renderMovieLines(m.movies)
	}
	return m.spinner.View() + styleDim.Render(" Searching...") + "\n"
}

func (m searchModel) runQuery() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.provider.SearchMovies(m.ctx, m.query)
		return searchDoneMsg{movies: movies, err: err}
	}
}
