package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/afibcare/afibcare/internal/alerts"
	"github.com/afibcare/afibcare/internal/config"
	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/series"
	"github.com/afibcare/afibcare/internal/store"
)

// ErrConflictingRange is returned when a last-N filter is combined with an
// explicit from/to range.
var ErrConflictingRange = errors.New("cannot combine a last-N filter with from/to dates")

// HistoryService provides read-only views over the recorded entries.
type HistoryService struct {
	storePath string
	config    config.Config
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(storePath string, cfg config.Config) *HistoryService {
	return &HistoryService{
		storePath: storePath,
		config:    cfg,
	}
}

// List returns stored days ascending by date, with alert flags evaluated per
// day. An empty from or to leaves that end of the range open; last limits
// the result to the most recent N days and cannot be combined with from/to.
func (s *HistoryService) List(from, to string, last int) (*HistoryResult, error) {
	if last > 0 && (from != "" || to != "") {
		return nil, ErrConflictingRange
	}
	if from != "" && !dateutil.Valid(from) {
		return nil, fmt.Errorf("%w: from %q", ErrInvalidDate, from)
	}
	if to != "" && !dateutil.Valid(to) {
		return nil, fmt.Errorf("%w: to %q", ErrInvalidDate, to)
	}

	result := store.LoadWithWarning(s.storePath)
	th := s.config.Thresholds()

	// Lexicographic order of YYYY-MM-DD keys is chronological order, so
	// the range filter is a plain string comparison.
	dates := make([]string, 0, len(result.Entries))
	for date := range result.Entries {
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if last > 0 && last < len(dates) {
		dates = dates[len(dates)-last:]
	}

	days := make([]Day, len(dates))
	for i, date := range dates {
		e := result.Entries[date]
		danger, warning := alerts.Evaluate(e, th)
		days[i] = Day{Entry: e, Danger: danger, Warning: warning, Stored: true}
	}

	return &HistoryResult{Days: days, Warning: result.Warning}, nil
}

// Series returns the chronological vitals series for charting, limited to
// the last N points when last is positive.
func (s *HistoryService) Series(last int) ([]series.Point, string) {
	result := store.LoadWithWarning(s.storePath)
	return series.Tail(series.Build(result.Entries), last), result.Warning
}
