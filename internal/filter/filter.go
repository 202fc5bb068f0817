package filter

import (
	"strings"
	"time"
)

// PublishedToday reports whether published falls on "today" relative to
// ref. Only day-of-month and month are compared; the year is ignored.
// A zero timestamp is never "today".
func PublishedToday(published, ref time.Time) bool {
	if published.IsZero() {
		return false
	}
	return published.Day() == ref.Day() && published.Month() == ref.Month()
}

// TitleMatches reports whether title contains keyword, case-insensitively.
// An empty keyword matches everything.
func TitleMatches(title, keyword string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(keyword))
}
