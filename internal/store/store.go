// Package store persists the collection of daily entries as a single JSON
// document: a mapping from ISO date string to entry. Every mutation rewrites
// the whole document; there is no partial or incremental persistence.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/afibcare/afibcare/internal/osutil"
	"github.com/afibcare/afibcare/internal/record"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "afibcare"
	// StoreFile is the name of the JSON store document.
	StoreFile = "store.json"
)

// Store is the complete collection of entries, keyed by date string.
// At most one entry exists per date; last write wins.
type Store map[string]record.DailyEntry

// DefaultPath returns the path to the store document.
// Uses os.UserConfigDir() for a cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func DefaultPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, StoreFile), nil
}

// LoadResult contains the result of reading the store, including a warning
// when persisted state was unreadable and an empty store was substituted.
type LoadResult struct {
	Entries Store
	Warning string
}

// LoadWithWarning reads the persisted store. A missing file, malformed JSON,
// or a document that is not a JSON object all degrade to an empty store with
// a warning; read failures never propagate to the caller.
func LoadWithWarning(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{Entries: Store{}}
		}
		return LoadResult{Entries: Store{}, Warning: "store file is unreadable: " + err.Error()}
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return LoadResult{Entries: Store{}, Warning: "store file is corrupted, starting from an empty store: " + err.Error()}
	}
	if s == nil {
		// "null" unmarshals without error.
		return LoadResult{Entries: Store{}, Warning: "store file does not hold an object, starting from an empty store"}
	}
	return LoadResult{Entries: s}
}

// Load reads the persisted store, discarding any recovery warning.
func Load(path string) Store {
	return LoadWithWarning(path).Entries
}

// Save serializes and persists the full mapping, overwriting prior state.
// Uses atomic write (temp file, then rename) so a failed write never leaves
// a truncated document behind.
func Save(path string, s Store) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}

// Get returns the stored entry for a date, or a freshly constructed default
// when no entry exists. The store is never mutated by a read.
func Get(s Store, date string) record.DailyEntry {
	if e, ok := s[date]; ok {
		return e
	}
	return record.Default(date)
}

// Upsert returns a new mapping equal to s except the entry at date is the
// merge of the existing entry (or a fresh default) with the patch. The input
// store is left untouched.
func Upsert(s Store, date string, p record.Patch) Store {
	out := make(Store, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[date] = record.Merge(Get(s, date), p)
	return out
}

// Remove returns a new mapping with the entry at date deleted.
// The input store is left untouched.
func Remove(s Store, date string) Store {
	out := make(Store, len(s))
	for k, v := range s {
		if k != date {
			out[k] = v
		}
	}
	return out
}
