// Package service provides the business logic layer for the afibcare
// application. It wraps the record store, alert evaluation, exports and
// demo generation behind a clean API for both the CLI and TUI frontends.
package service

import (
	"github.com/afibcare/afibcare/internal/alerts"
	"github.com/afibcare/afibcare/internal/record"
)

// Day couples one entry with its evaluated alert flags.
type Day struct {
	Entry   record.DailyEntry
	Danger  []string
	Warning []string
	// Stored is false when Entry is a synthesized default for a date
	// without a persisted record.
	Stored bool
}

// Severity grades the day by its worst flag.
func (d Day) Severity() alerts.Severity {
	if len(d.Danger) > 0 {
		return alerts.SeverityDanger
	}
	if len(d.Warning) > 0 {
		return alerts.SeverityWarning
	}
	return alerts.SeverityNone
}

// HistoryResult contains the days of a history listing in ascending date
// order, plus a store recovery warning when persisted state was unreadable.
type HistoryResult struct {
	Days    []Day
	Warning string
}
