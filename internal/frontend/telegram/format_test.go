package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

func TestEscapeMdV2(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"plain text", "plain text"},
		{"dots. and! marks", "dots\\. and\\! marks"},
		{"(2010)", "\\(2010\\)"},
		{"a_b*c", "a\\_b\\*c"},
	}
	for _, tt := range tests {
		if got := EscapeMdV2(tt.in); got != tt.expect {
			t.Errorf("EscapeMdV2(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}

func TestFormatMovieList(t *testing.T) {
	movies := []tmdb.Movie{
		{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-16", VoteAverage: 8.4},
		{ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", VoteAverage: 8.4},
	}

	out := FormatMovieList("Search results", movies)
	if !strings.Contains(out, "Inception") {
		t.Error("list should contain first title")
	}
	if !strings.Contains(out, "Fight Club") {
		t.Error("list should contain second title")
	}
	if !strings.Contains(out, "1999") {
		t.Error("list should contain release year")
	}
	if !strings.Contains(out, "1\\.") {
		t.Error("list should be numbered with escaped dots")
	}
}

func TestFormatDetails(t *testing.T) {
	d := &tmdb.MovieDetails{
		Title:       "Fight Club",
		ReleaseDate: "1999-10-15",
		Runtime:     139,
		VoteAverage: 8.4,
		Overview:    "An insomniac office worker...",
		Genres:      []tmdb.Genre{{ID: 18, Name: "Drama"}},
		Credits: tmdb.Credits{
			Cast: []tmdb.CastMember{
				{Name: "Edward Norton"},
				{Name: "Brad Pitt"},
			},
		},
	}

	out := FormatDetails(d)
	for _, want := range []string{"Fight Club", "1999", "2h 19m", "Drama", "Edward Norton"} {
		if !strings.Contains(out, want) {
			t.Errorf("details missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDetails_TopCastOnly(t *testing.T) {
	d := &tmdb.MovieDetails{Title: "Big Ensemble", Runtime: 90}
	for _, name := range []string{"Actor One", "Actor Two", "Actor Three", "Actor Four", "Actor Five", "Actor Six"} {
		d.Credits.Cast = append(d.Credits.Cast, tmdb.CastMember{Name: name})
	}

	out := FormatDetailsPlain(d)
	if !strings.Contains(out, "Actor Five") {
		t.Error("fifth cast member should be listed")
	}
	if strings.Contains(out, "Actor Six") {
		t.Error("cast should be truncated to the top five")
	}
}

func TestFormatDetailsPlain_NoCast(t *testing.T) {
	d := &tmdb.MovieDetails{Title: "Unknown", Runtime: 0}
	out := FormatDetailsPlain(d)
	if strings.Contains(out, "Cast:") {
		t.Error("empty credits should not render a cast line")
	}
	if !strings.Contains(out, "N/A") {
		t.Error("zero runtime should render as N/A")
	}
}

func TestBuildDetailKeyboard(t *testing.T) {
	movies := []tmdb.Movie{
		{ID: 27205, Title: "Inception"},
		{ID: 550, Title: "A Movie With A Really Quite Long Title Indeed"},
	}

	kb := buildDetailKeyboard(movies)
	if kb == nil {
		t.Fatal("expected a keyboard")
	}
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(kb.InlineKeyboard))
	}

	first := kb.InlineKeyboard[0][0]
	if first.CallbackData == nil || *first.CallbackData != "det:27205" {
		t.Errorf("first callback data = %v, want det:27205", first.CallbackData)
	}

	second := kb.InlineKeyboard[1][0]
	if !strings.HasSuffix(second.Text, "…") {
		t.Errorf("long title should be truncated with ellipsis, got %q", second.Text)
	}
}

func TestBuildDetailKeyboard_MultibyteTitle(t *testing.T) {
	kb := buildDetailKeyboard([]tmdb.Movie{
		{ID: 129, Title: strings.Repeat("千と千尋の神隠し", 8)},
	})
	if kb == nil {
		t.Fatal("expected a keyboard")
	}

	label := kb.InlineKeyboard[0][0].Text
	if !utf8.ValidString(label) {
		t.Errorf("truncated label contains invalid UTF-8: %q", label)
	}
	if !strings.HasSuffix(label, "…") {
		t.Errorf("long title should be truncated with ellipsis, got %q", label)
	}
}

func TestBuildDetailKeyboard_Empty(t *testing.T) {
	if kb := buildDetailKeyboard(nil); kb != nil {
		t.Error("empty list should produce no keyboard")
	}
}

func TestAccessList(t *testing.T) {
	open := newAccessList(nil)
	if !open.isAllowed(42) {
		t.Error("empty allow-list should allow everyone")
	}

	restricted := newAccessList([]int64{1, 2})
	if !restricted.isAllowed(1) {
		t.Error("listed user should be allowed")
	}
	if restricted.isAllowed(3) {
		t.Error("unlisted user should be denied")
	}
}
