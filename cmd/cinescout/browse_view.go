package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cinescout/cinescout/internal/format"
	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

const (
	cardWidth    = 24
	cardHeight   = 4
	skeletonRows = 8 // skeleton cards shown while a list fetch is in flight
)

var (
	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Width(cardWidth).
			Height(cardHeight).
			Padding(0, 1)

	styleCardSelected = styleCard.
				BorderForeground(lipgloss.Color("5"))

	styleSkeleton = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(1, 2)

	styleToast = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12")).
			Padding(0, 1)

	stylePlaceholder = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Italic(true)
)

// View renders the whole UI: header, search box, grid or modal, toast line.
func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := styleHeader.Render("CineScout")
	if m.busy() {
		header += " " + m.spinner.View()
	}

	inputLine := "> " + m.input.View()

	var body string
	if m.modalOpen {
		body = m.renderModal()
	} else {
		body = m.renderBody()
	}

	parts := []string{header, inputLine, "", body}
	if m.toast != "" {
		parts = append(parts, "", styleToast.Render(m.toast))
	}
	return strings.Join(parts, "\n")
}

// renderBody picks the grid, skeleton, or placeholder for the current state.
func (m browseModel) renderBody() string {
	searching := strings.TrimSpace(m.input.Value()) != ""

	if searching {
		switch {
		case m.searchBusy:
			return m.renderSkeletonGrid()
		case len(m.results) > 0:
			return m.renderGrid("Search results", m.results)
		default:
			return stylePlaceholder.Render("No movies found. Try a different title.")
		}
	}

	switch {
	case m.trendingBusy:
		return m.renderSkeletonGrid()
	case len(m.trending) > 0:
		return m.renderGrid("Trending this week", m.trending)
	default:
		return stylePlaceholder.Render("Start searching for a movie above.")
	}
}

// renderGrid lays movie cards out in rows of gridColumns.
func (m browseModel) renderGrid(title string, movies []tmdb.Movie) string {
	cols := m.gridColumns()

	var rows []string
	for start := 0; start < len(movies); start += cols {
		end := min(start+cols, len(movies))
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(movies[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return styleDim.Render(title) + "\n" + strings.Join(rows, "\n")
}

// renderCard renders a single movie card: title, year, rating. Titles are
// truncated by display width so wide runes never break the card edge.
func (m browseModel) renderCard(movie tmdb.Movie, selected bool) string {
	title := ansi.Truncate(movie.Title, cardWidth-2, "…")

	content := styleTitle.Render(title) + "\n" +
		styleDim.Render(format.Year(movie.ReleaseDate)) + "\n" +
		styleRating.Render("★ "+format.Rating(movie.VoteAverage))

	if selected {
		return styleCardSelected.Render(content)
	}
	return styleCard.Render(content)
}

// renderSkeletonGrid renders placeholder cards while a list fetch is in
// flight.
func (m browseModel) renderSkeletonGrid() string {
	cols := m.gridColumns()
	bar := styleSkeleton.Render(strings.Repeat("░", cardWidth-4))
	card := styleCard.Render(bar + "\n" + bar + "\n" + bar)

	var rows []string
	remaining := skeletonRows
	for remaining > 0 {
		n := min(cols, remaining)
		cards := make([]string, n)
		for i := range n {
			cards[i] = card
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		remaining -= n
	}
	return strings.Join(rows, "\n")
}

// renderModal renders the detail overlay: skeleton lines until the detail
// record lands, the full layout after.
func (m browseModel) renderModal() string {
	width := min(m.width-8, 72)
	if width < 30 {
		width = 30
	}
	inner := lipgloss.NewStyle().Width(width)

	var body string
	if m.detail == nil {
		bar := styleSkeleton.Render(strings.Repeat("░", width-4))
		lines := []string{bar, bar, bar, bar, bar}
		body = strings.Join(lines, "\n")
	} else {
		body = renderModalBody(m.detail, width)
	}

	modal := styleModal.Render(inner.Render(body) + "\n\n" + styleDim.Render("esc to close"))
	return lipgloss.Place(m.width, lipgloss.Height(modal), lipgloss.Center, lipgloss.Top, modal)
}

// renderModalBody renders the full detail layout.
func renderModalBody(d *tmdb.MovieDetails, width int) string {
	var sb strings.Builder

	sb.WriteString(styleHeader.Render(d.Title + " (" + format.Year(d.ReleaseDate) + ")"))
	sb.WriteString("\n")

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
	sb.WriteString(styleInfo.Render(strings.Join(meta, "  ·  ")))

	if d.Overview != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().Width(width).Render(d.Overview))
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
		sb.WriteString("\n\n")
		sb.WriteString(styleDim.Render("Cast: " + strings.Join(names, ", ")))
	}

	return sb.String()
}

// gridColumns computes how many cards fit per row at the current width.
func (m browseModel) gridColumns() int {
	cols := m.width / (cardWidth + 2)
	if cols < 1 {
		cols = 1
	}
	return cols
}
