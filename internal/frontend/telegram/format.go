package telegram

import (
	"fmt"
	"strings"

	"github.com/cinescout/cinescout/internal/format"
	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

// topCast limits how many cast names are shown in a detail message.
const topCast = 5

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatMovieList renders a numbered movie list as MarkdownV2.
func FormatMovieList(title string, movies []tmdb.Movie) string {
	var sb strings.Builder
	sb.WriteString("*" + EscapeMdV2(title) + "*\n\n")
	for i, m := range movies {
		sb.WriteString(EscapeMdV2(fmt.Sprintf("%d. %s (%s) — %s",
			i+1, m.Title, format.Year(m.ReleaseDate), format.Rating(m.VoteAverage))))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatMovieListPlain renders a numbered movie list without markup, used
// as a fallback when the MarkdownV2 send is rejected.
func FormatMovieListPlain(title string, movies []tmdb.Movie) string {
	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	for i, m := range movies {
		fmt.Fprintf(&sb, "%d. %s (%s) — %s\n",
			i+1, m.Title, format.Year(m.ReleaseDate), format.Rating(m.VoteAverage))
	}
	return sb.String()
}

// FormatDetails renders a movie detail record as MarkdownV2.
func FormatDetails(d *tmdb.MovieDetails) string {
	var sb strings.Builder
	sb.WriteString("*" + EscapeMdV2(d.Title) + "*")
	sb.WriteString(EscapeMdV2(" (" + format.Year(d.ReleaseDate) + ")"))
	sb.WriteString("\n")
	sb.WriteString(EscapeMdV2(detailLine(d)))
	if d.Overview != "" {
		sb.WriteString("\n\n")
		sb.WriteString(EscapeMdV2(d.Overview))
	}
	if cast := castLine(d); cast != "" {
		sb.WriteString("\n\n")
		sb.WriteString(EscapeMdV2(cast))
	}
	return sb.String()
}

// FormatDetailsPlain renders a movie detail record without markup.
func FormatDetailsPlain(d *tmdb.MovieDetails) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n%s", d.Title, format.Year(d.ReleaseDate), detailLine(d))
	if d.Overview != "" {
		sb.WriteString("\n\n" + d.Overview)
	}
	if cast := castLine(d); cast != "" {
		sb.WriteString("\n\n" + cast)
	}
	return sb.String()
}

// detailLine renders the "runtime | rating | genres" summary line.
func detailLine(d *tmdb.MovieDetails) string {
	parts := []string{
		format.Runtime(d.Runtime),
		format.Rating(d.VoteAverage) + "/10",
	}
	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		parts = append(parts, strings.Join(names, ", "))
	}
	return strings.Join(parts, " | ")
}

// castLine renders the top-billed cast, or "" when credits are empty.
func castLine(d *tmdb.MovieDetails) string {
	if len(d.Credits.Cast) == 0 {
		return ""
	}
	cast := d.Credits.Cast
	if len(cast) > topCast {
		cast = cast[:topCast]
	}
	names := make([]string, len(cast))
	for i, c := range cast {
		names[i] = c.Name
	}
	return "Cast: " + strings.Join(names, ", ")
}
