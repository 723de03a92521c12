// Package dateutil provides helpers for the ISO date strings used as record
// keys. Lexicographic order of YYYY-MM-DD strings coincides with
// chronological order, which the store and derived views rely on.
package dateutil

import "time"

// Layout is the date format used for record keys.
const Layout = "2006-01-02"

// Today returns today's date string in the local timezone.
func Today() string {
	return time.Now().Format(Layout)
}

// Format formats a time as a date string in its timezone.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse parses and validates a date string.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// Valid reports whether s is a well-formed YYYY-MM-DD date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// LastN returns n consecutive date strings ascending, ending at end.
func LastN(end time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = end.AddDate(0, 0, -(n - 1 - i)).Format(Layout)
	}
	return dates
}
