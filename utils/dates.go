package utils

import "time"

// DateLayout is the canonical YYYY-MM-DD form used for entry and reflection dates.
const DateLayout = "2006-01-02"

// FormatDate renders a time as a canonical date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current date in the server's local clock.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDate parses a canonical date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
