// Package format holds display formatting helpers shared by the TUI, CLI,
// and Telegram frontends.
package format

import (
	"fmt"
	"strings"
)

// notAvailable is shown whenever a field is absent or zero.
const notAvailable = "N/A"

// Year extracts the year from a TMDb release date ("2010-07-16" -> "2010").
// An empty date yields "N/A".
func Year(releaseDate string) string {
	if releaseDate == "" {
		return notAvailable
	}
	if idx := strings.IndexByte(releaseDate, '-'); idx > 0 {
		return releaseDate[:idx]
	}
	return releaseDate
}

// Runtime renders a runtime in minutes as "2h 5m". Zero minutes yields
// "N/A" (TMDb reports 0 for unknown runtimes).
func Runtime(minutes int) string {
	if minutes <= 0 {
		return notAvailable
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Rating renders a 0-10 vote average with one decimal ("8.4"). A zero
// rating yields "N/A".
func Rating(voteAverage float64) string {
	if voteAverage <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.1f", voteAverage)
}
