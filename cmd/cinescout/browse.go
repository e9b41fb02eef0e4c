package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cinescout/cinescout/internal/config"
	"github.com/cinescout/cinescout/internal/core"
	"github.com/cinescout/cinescout/internal/debounce"
	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

const toastDuration = 3 * time.Second

// newBrowseCmd returns the "browse" subcommand: the interactive discovery TUI.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse trending movies and search interactively",
		Long: "Open the interactive discovery UI.\n" +
			"Type to search (debounced), arrows to move, enter for details, esc to go back, ctrl+c to quit.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowse()
		},
	}
}

// runBrowse initializes services and starts the Bubble Tea browse TUI.
func runBrowse() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	provider := newProvider(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	delay := time.Duration(cfg.App.DebounceMS) * time.Millisecond
	m := newBrowseModel(ctx, provider, delay)

	var p *tea.Program
	// The debounce timer fires on its own goroutine; bridge it into the
	// Bubble Tea event loop the same way OS signals are bridged below.
	m.send = func(msg tea.Msg) { p.Send(msg) }
	p = tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browse: %w", err)
	}
	return nil
}

// Messages carrying async fetch results back to the TUI.
type (
	// searchRequestMsg is emitted by the debouncer when the query has
	// been quiet long enough to search.
	searchRequestMsg struct{ query string }

	searchResultMsg struct {
		movies []tmdb.Movie
		err    error
	}

	trendingResultMsg struct {
		movies []tmdb.Movie
		err    error
	}

	detailResultMsg struct {
		details *tmdb.MovieDetails
		err     error
	}

	toastExpireMsg struct{ seq int }
)

// browseModel is the Bubble Tea model for the discovery UI.
type browseModel struct {
	ctx      context.Context
	provider core.MetadataProvider
	debounce *debounce.Debouncer
	send     func(tea.Msg) // injected after tea.NewProgram

	input   textinput.Model
	spinner spinner.Model

	trending     []tmdb.Movie
	results      []tmdb.Movie
	trendingBusy bool
	searchBusy   bool

	cursor    int
	modalOpen bool
	selected  *tmdb.Movie
	detail    *tmdb.MovieDetails

	toast    string
	toastSeq int

	width  int
	height int
	ready  bool
}

// newBrowseModel creates a browseModel with text input, spinner, and debouncer.
func newBrowseModel(ctx context.Context, provider core.MetadataProvider, delay time.Duration) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search for a movie..."
	ti.Focus()
	ti.CharLimit = 200

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo

	return browseModel{
		ctx:      ctx,
		provider: provider,
		debounce: debounce.New(delay),
		input:    ti,
		spinner:  s,
		// The trending fetch starts in Init, so the first frame already
		// shows the skeleton grid.
		trendingBusy: true,
	}
}

// Init fetches the trending landing view and starts the cursor blink.
func (m browseModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetchTrending())
}

// Update handles incoming messages and user input.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		model, cmd, handled := m.handleKey(msg)
		if handled {
			return model, cmd
		}
		// Unhandled keys edit the query.
		before := m.input.Value()
		var tiCmd tea.Cmd
		m.input, tiCmd = m.input.Update(msg)
		cmds = append(cmds, tiCmd)
		if m.input.Value() != before {
			m.onQueryChanged()
		}
		return m, tea.Batch(cmds...)

	case searchRequestMsg:
		return m.startSearch(msg.query)

	case searchResultMsg:
		return m.applySearchResult(msg)

	case trendingResultMsg:
		m.trendingBusy = false
		if msg.err != nil {
			m.trending = nil
			return m, m.showToast("Could not load trending movies")
		}
		m.trending = msg.movies
		return m, nil

	case detailResultMsg:
		if msg.err != nil {
			// The record stays unset, so the modal keeps its skeleton;
			// the selection itself is untouched.
			return m, m.showToast("Could not load movie details")
		}
		m.detail = msg.details
		return m, nil

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var tiCmd tea.Cmd
	m.input, tiCmd = m.input.Update(msg)
	cmds = append(cmds, tiCmd)

	return m, tea.Batch(cmds...)
}

// handleKey dispatches navigation keys; everything else falls through to
// the text input.
func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.debounce.Stop()
		return *m, tea.Quit, true

	case "esc":
		if m.modalOpen {
			m.closeModal()
			return *m, nil, true
		}
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.onQueryChanged()
			return *m, nil, true
		}
		return *m, nil, true

	case "up", "down", "left", "right":
		if m.modalOpen {
			return *m, nil, true
		}
		m.moveCursor(msg.String())
		return *m, nil, true

	case "enter":
		if m.modalOpen {
			return *m, nil, true
		}
		return m.openModal()
	}
	return *m, nil, false
}

// onQueryChanged reacts to every edit of the search box. A blank query
// clears the result list immediately without a network call; any query
// resets the debounce timer so only the last value in a burst is searched.
func (m *browseModel) onQueryChanged() {
	query := m.input.Value()
	m.cursor = 0
	if strings.TrimSpace(query) == "" {
		m.results = nil
		m.searchBusy = false
	}
	send := m.send
	m.debounce.Trigger(func() {
		send(searchRequestMsg{query: query})
	})
}

// startSearch begins the actual fetch once the debouncer fires.
func (m browseModel) startSearch(query string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(query) == "" {
		m.results = nil
		m.searchBusy = false
		return m, nil
	}
	m.searchBusy = true
	return m, tea.Batch(m.fetchSearch(query), m.spinner.Tick)
}

// applySearchResult replaces the result list wholesale. Results are
// applied in arrival order; a slow response for a superseded query simply
// loses to whatever lands after it.
func (m browseModel) applySearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	m.searchBusy = false
	if msg.err != nil {
		m.results = nil
		return m, m.showToast("Search failed, please try again")
	}
	m.results = msg.movies
	m.cursor = 0
	if len(msg.movies) == 0 {
		return m, m.showToast("No movies found")
	}
	return m, m.showToast(fmt.Sprintf("Found %d movies", len(msg.movies)))
}

// openModal activates the card under the cursor and starts the detail fetch.
func (m browseModel) openModal() (tea.Model, tea.Cmd, bool) {
	list := m.visibleList()
	if len(list) == 0 || m.cursor >= len(list) {
		return m, nil, true
	}
	movie := list[m.cursor]
	m.selected = &movie
	m.detail = nil
	m.modalOpen = true
	return m, tea.Batch(m.fetchDetail(movie.ID), m.spinner.Tick), true
}

// closeModal discards the detail record.
func (m *browseModel) closeModal() {
	m.modalOpen = false
	m.selected = nil
	m.detail = nil
}

// moveCursor moves the grid cursor within the visible list.
func (m *browseModel) moveCursor(key string) {
	list := m.visibleList()
	if len(list) == 0 {
		return
	}
	cols := m.gridColumns()
	switch key {
	case "left":
		m.cursor--
	case "right":
		m.cursor++
	case "up":
		m.cursor -= cols
	case "down":
		m.cursor += cols
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(list) {
		m.cursor = len(list) - 1
	}
}

// visibleList returns whichever list the view is currently showing:
// trending for an empty query, search results otherwise.
func (m browseModel) visibleList() []tmdb.Movie {
	if strings.TrimSpace(m.input.Value()) == "" {
		return m.trending
	}
	return m.results
}

func (m browseModel) busy() bool {
	return m.trendingBusy || m.searchBusy || (m.modalOpen && m.detail == nil)
}

// showToast replaces the current toast and schedules its expiry. Only the
// newest toast's expiry clears the line.
func (m *browseModel) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

// Fetch commands. Each runs on its own goroutine and reports back with a
// message; none of them is canceled when superseded.

func (m browseModel) fetchTrending() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.provider.TrendingWeek(m.ctx)
		return trendingResultMsg{movies: movies, err: err}
	}
}

func (m browseModel) fetchSearch(query string) tea.Cmd {
	return func() tea.Msg {
		movies, err := m.provider.SearchMovies(m.ctx, query)
		return searchResultMsg{movies: movies, err: err}
	}
}

func (m browseModel) fetchDetail(id int) tea.Cmd {
	return func() tea.Msg {
		details, err := m.provider.MovieDetails(m.ctx, id)
		return detailResultMsg{details: details, err: err}
	}
}
