package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/afibcare/afibcare/internal/demo"
	"github.com/afibcare/afibcare/internal/store"
)

// ErrInvalidDays is returned when a demo fill is requested for a
// non-positive number of days.
var ErrInvalidDays = errors.New("days must be positive")

// DemoService fills the store with generated demonstration data.
type DemoService struct {
	storePath string
}

// NewDemoService creates a new DemoService
func NewDemoService(storePath string) *DemoService {
	return &DemoService{storePath: storePath}
}

// Fill replaces the entire store with generated entries for days
// consecutive dates ending at now. The prior store is rotated into a backup
// before being overwritten. Returns the number of generated entries.
func (s *DemoService) Fill(now time.Time, days int, seed int64) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	generated := demo.Generate(now, days, rand.New(rand.NewSource(seed)))

	if err := store.CreateBackup(s.storePath); err != nil {
		return 0, fmt.Errorf("failed to back up store: %w", err)
	}
	if err := store.Save(s.storePath, generated); err != nil {
		return 0, fmt.Errorf("failed to save store: %w", err)
	}
	return len(generated), nil
}
