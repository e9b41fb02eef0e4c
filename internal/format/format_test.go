package format

import "testing"

func TestYear(t *testing.T) {
	tests := []struct {
		date   string
		expect string
	}{
		{"1999-03-04", "1999"},
		{"2010-07-16", "2010"},
		{"", "N/A"},
		{"2024", "2024"},
	}
	for _, tt := range tests {
		if got := Year(tt.date); got != tt.expect {
			t.Errorf("Year(%q) = %q, want %q", tt.date, got, tt.expect)
		}
	}
}

func TestRuntime(t *testing.T) {
	tests := []struct {
		minutes int
		expect  string
	}{
		{125, "2h 5m"},
		{139, "2h 19m"},
		{60, "1h 0m"},
		{45, "45m"},
		{0, "N/A"},
		{-10, "N/A"},
	}
	for _, tt := range tests {
		if got := Runtime(tt.minutes); got != tt.expect {
			t.Errorf("Runtime(%d) = %q, want %q", tt.minutes, got, tt.expect)
		}
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		vote   float64
		expect string
	}{
		{8.4, "8.4"},
		{7.06, "7.1"},
		{9, "9.0"},
		{0, "N/A"},
	}
	for _, tt := range tests {
		if got := Rating(tt.vote); got != tt.expect {
			t.Errorf("Rating(%v) = %q, want %q", tt.vote, got, tt.expect)
		}
	}
}
