package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/afibcare/afibcare/internal/alerts"
	"github.com/afibcare/afibcare/internal/config"
	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/store"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func newTestServices(t *testing.T) (*Services, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, store.StoreFile)
	configPath := filepath.Join(dir, config.ConfigFile)
	return NewServicesWithPaths(storePath, configPath, config.DefaultConfig()), storePath
}

func TestCheckinGet_SynthesizesDefault(t *testing.T) {
	svc, storePath := newTestServices(t)

	day, warning, err := svc.Checkin.Get("2026-03-01")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning: %q", warning)
	}
	if day.Stored {
		t.Error("synthesized default should not be marked stored")
	}
	if day.Entry.Date != "2026-03-01" {
		t.Errorf("entry date = %q", day.Entry.Date)
	}
	if day.Entry.Fatigue != record.FatigueNone {
		t.Errorf("default fatigue = %q", day.Entry.Fatigue)
	}

	// Reads never persist.
	if _, err := os.Stat(storePath); !os.IsNotExist(err) {
		t.Error("Get should not create the store file")
	}
}

func TestCheckinGet_InvalidDate(t *testing.T) {
	svc, _ := newTestServices(t)

	_, _, err := svc.Checkin.Get("01/03/2026")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCheckinLog_PersistsAndEvaluates(t *testing.T) {
	svc, storePath := newTestServices(t)

	day, _, err := svc.Checkin.Log("2026-03-01", record.Patch{
		Pulse:    strPtr("120"),
		Bleeding: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if !day.Stored {
		t.Error("logged day should be marked stored")
	}
	if len(day.Danger) != 2 {
		t.Errorf("expected 2 danger flags (pulse, bleeding), got %v", day.Danger)
	}
	if day.Severity() != alerts.SeverityDanger {
		t.Errorf("severity = %v, want danger", day.Severity())
	}

	// The mutation persisted immediately.
	entries := store.Load(storePath)
	if entries["2026-03-01"].Pulse != "120" {
		t.Error("entry not persisted")
	}
}

func TestCheckinLog_PreservesSiblingDoses(t *testing.T) {
	svc, _ := newTestServices(t)

	_, _, err := svc.Checkin.Log("2026-03-01", record.Patch{
		Meds: &record.MedsPatch{AM: &record.MorningPatch{Edoxaban: boolPtr(true)}},
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	day, _, err := svc.Checkin.Log("2026-03-01", record.Patch{
		Meds: &record.MedsPatch{AM: &record.MorningPatch{Multaq: boolPtr(true)}},
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	if !day.Entry.Meds.AM.Edoxaban {
		t.Error("patching am.multaq cleared the sibling am.edoxaban dose")
	}
	if !day.Entry.Meds.AM.Multaq {
		t.Error("patched dose not set")
	}
}

func TestCheckinLog_Validation(t *testing.T) {
	svc, _ := newTestServices(t)

	tests := []struct {
		name    string
		date    string
		patch   record.Patch
		wantErr error
	}{
		{"bad date", "not-a-date", record.Patch{Pulse: strPtr("70")}, ErrInvalidDate},
		{"empty patch", "2026-03-01", record.Patch{}, ErrEmptyPatch},
		{"bad fatigue", "2026-03-01", record.Patch{Fatigue: strPtr("9")}, ErrInvalidFatigue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Checkin.Log(tt.date, tt.patch)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Log() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckinLog_LastWriteWins(t *testing.T) {
	svc, _ := newTestServices(t)

	if _, _, err := svc.Checkin.Log("2026-03-01", record.Patch{Pulse: strPtr("70")}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	day, _, err := svc.Checkin.Log("2026-03-01", record.Patch{Pulse: strPtr("75")})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if day.Entry.Pulse != "75" {
		t.Errorf("pulse = %q, want the later write", day.Entry.Pulse)
	}
}

func TestCheckinReset(t *testing.T) {
	svc, storePath := newTestServices(t)

	if _, _, err := svc.Checkin.Log("2026-03-01", record.Patch{Pulse: strPtr("70")}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	existed, err := svc.Checkin.Reset("2026-03-01")
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !existed {
		t.Error("Reset should report the removed entry existed")
	}
	if entries := store.Load(storePath); len(entries) != 0 {
		t.Errorf("expected empty store after reset, got %d entries", len(entries))
	}

	// A backup of the pre-reset state was rotated.
	if _, err := os.Stat(store.BackupPath(storePath, 1)); err != nil {
		t.Error("expected a backup before the destructive reset")
	}
}

func TestCheckinReset_MissingEntryIsNoop(t *testing.T) {
	svc, storePath := newTestServices(t)

	existed, err := svc.Checkin.Reset("2026-03-01")
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if existed {
		t.Error("Reset of a missing entry should report existed=false")
	}
	if _, err := os.Stat(storePath); !os.IsNotExist(err) {
		t.Error("no-op reset should not create the store file")
	}
}

func TestCheckinResetAll(t *testing.T) {
	svc, storePath := newTestServices(t)

	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		if _, _, err := svc.Checkin.Log(date, record.Patch{Pulse: strPtr("70")}); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	n, err := svc.Checkin.ResetAll()
	if err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}
	if n != 3 {
		t.Errorf("ResetAll removed %d entries, want 3", n)
	}
	if entries := store.Load(storePath); len(entries) != 0 {
		t.Errorf("expected empty store, got %d entries", len(entries))
	}
}

func TestCheckinGet_CorruptedStoreWarns(t *testing.T) {
	svc, storePath := newTestServices(t)

	if err := os.WriteFile(storePath, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write store: %v", err)
	}

	day, warning, err := svc.Checkin.Get("2026-03-01")
	if err != nil {
		t.Fatalf("Get should recover from corruption, got: %v", err)
	}
	if warning == "" {
		t.Error("expected a recovery warning")
	}
	if day.Entry.Date != "2026-03-01" {
		t.Error("expected a default entry despite corruption")
	}
}
