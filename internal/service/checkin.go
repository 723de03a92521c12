package service

import (
	"errors"
	"fmt"

	"github.com/afibcare/afibcare/internal/alerts"
	"github.com/afibcare/afibcare/internal/config"
	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/store"
)

// Common errors for the check-in service
var (
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidFatigue = errors.New("invalid fatigue level, expected 0 (none), 1 (mild) or 2 (severe)")
	ErrEmptyPatch     = errors.New("no fields to update")
)

// CheckinService provides operations for reading and recording daily
// check-in entries.
type CheckinService struct {
	storePath string
	config    config.Config
}

// NewCheckinService creates a new CheckinService
func NewCheckinService(storePath string, cfg config.Config) *CheckinService {
	return &CheckinService{
		storePath: storePath,
		config:    cfg,
	}
}

// Get returns the day for a date, synthesizing a default entry when none is
// stored. The store is never modified by a read. The second return value is
// a recovery warning when persisted state was unreadable.
func (s *CheckinService) Get(date string) (*Day, string, error) {
	if !dateutil.Valid(date) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	result := store.LoadWithWarning(s.storePath)
	_, stored := result.Entries[date]
	day := s.evaluate(store.Get(result.Entries, date), stored)
	return day, result.Warning, nil
}

// Log merges a patch into the entry for a date and persists the whole store
// immediately. A failed persist leaves the stored state untouched.
func (s *CheckinService) Log(date string, p record.Patch) (*Day, string, error) {
	if !dateutil.Valid(date) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if p.IsEmpty() {
		return nil, "", ErrEmptyPatch
	}
	if p.Fatigue != nil && !record.ValidFatigue(*p.Fatigue) {
		return nil, "", fmt.Errorf("%w: got %q", ErrInvalidFatigue, *p.Fatigue)
	}

	result := store.LoadWithWarning(s.storePath)
	next := store.Upsert(result.Entries, date, p)
	if err := store.Save(s.storePath, next); err != nil {
		return nil, result.Warning, fmt.Errorf("failed to save entry: %w", err)
	}

	return s.evaluate(next[date], true), result.Warning, nil
}

// Reset removes the entry for a date. It reports whether an entry existed;
// resetting a date without an entry is a no-op that does not rewrite the
// store. A backup is rotated before the removal.
func (s *CheckinService) Reset(date string) (bool, error) {
	if !dateutil.Valid(date) {
		return false, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	entries := store.Load(s.storePath)
	if _, ok := entries[date]; !ok {
		return false, nil
	}

	if err := store.CreateBackup(s.storePath); err != nil {
		return false, fmt.Errorf("failed to back up store: %w", err)
	}
	if err := store.Save(s.storePath, store.Remove(entries, date)); err != nil {
		return false, fmt.Errorf("failed to save store: %w", err)
	}
	return true, nil
}

// ResetAll removes every entry, returning how many were removed. A backup is
// rotated before the store is replaced with an empty document.
func (s *CheckinService) ResetAll() (int, error) {
	entries := store.Load(s.storePath)
	if len(entries) == 0 {
		return 0, nil
	}

	if err := store.CreateBackup(s.storePath); err != nil {
		return 0, fmt.Errorf("failed to back up store: %w", err)
	}
	if err := store.Save(s.storePath, store.Store{}); err != nil {
		return 0, fmt.Errorf("failed to save store: %w", err)
	}
	return len(entries), nil
}

func (s *CheckinService) evaluate(e record.DailyEntry, stored bool) *Day {
	danger, warning := alerts.Evaluate(e, s.config.Thresholds())
	return &Day{
		Entry:   e,
		Danger:  danger,
		Warning: warning,
		Stored:  stored,
	}
}
