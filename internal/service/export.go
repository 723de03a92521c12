package service

import (
	"fmt"
	"time"

	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/export"
	"github.com/afibcare/afibcare/internal/store"
)

// ExportService renders the store as exportable documents.
type ExportService struct {
	storePath string
}

// NewExportService creates a new ExportService
func NewExportService(storePath string) *ExportService {
	return &ExportService{storePath: storePath}
}

// CSV returns the CSV document for all entries, plus a store recovery
// warning when persisted state was unreadable.
func (s *ExportService) CSV() (string, string) {
	result := store.LoadWithWarning(s.storePath)
	return export.CSV(result.Entries), result.Warning
}

// JSON returns the JSON export document for all entries.
func (s *ExportService) JSON(now time.Time) ([]byte, string, error) {
	result := store.LoadWithWarning(s.storePath)
	data, err := export.JSON(result.Entries, now)
	if err != nil {
		return nil, result.Warning, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, result.Warning, nil
}

// DefaultCSVName returns the conventional CSV filename for an export made
// on the given day.
func (s *ExportService) DefaultCSVName(now time.Time) string {
	return export.Filename(dateutil.Format(now))
}
