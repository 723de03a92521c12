package cmd

import (
	"strings"
	"testing"

	"github.com/afibcare/afibcare/internal/record"
)

func seedHistory(t *testing.T, env *testEnv) {
	t.Helper()

	a := record.Default("2026-03-08")
	a.Pulse = "70"
	a.BPSys = "120"
	a.BPDia = "78"
	a.Notes = "quiet day"
	env.seedEntry(t, a)

	b := record.Default("2026-03-09")
	b.Pulse = "125"
	env.seedEntry(t, b)

	c := record.Default("2026-03-10")
	c.Dizziness = true
	env.seedEntry(t, c)
}

func TestRunHistory_Empty(t *testing.T) {
	env := setupTest(t)
	cmd := newTestCommand(t, registerHistoryFlags)

	runHistory(cmd)

	if !strings.Contains(env.stdout.String(), "No entries recorded") {
		t.Errorf("Expected empty-store message, got: %s", env.stdout.String())
	}
	if env.exited {
		t.Error("An empty store is not an error")
	}
}

func TestRunHistory_TableAscendingWithMarkers(t *testing.T) {
	env := setupTest(t)
	seedHistory(t, env)
	cmd := newTestCommand(t, registerHistoryFlags)

	runHistory(cmd)

	output := env.stdout.String()
	first := strings.Index(output, "2026-03-08")
	second := strings.Index(output, "2026-03-09")
	third := strings.Index(output, "2026-03-10")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("Expected all three dates in output, got: %s", output)
	}
	if !(first < second && second < third) {
		t.Error("Expected rows ascending by date")
	}
	if !strings.Contains(output, "!!") {
		t.Errorf("Expected danger marker for the out-of-range pulse, got: %s", output)
	}
	if !strings.Contains(output, "3 days") {
		t.Errorf("Expected day count footer, got: %s", output)
	}
}

func TestRunHistory_LastN(t *testing.T) {
	env := setupTest(t)
	seedHistory(t, env)
	cmd := newTestCommand(t, registerHistoryFlags, "--last", "2")

	runHistory(cmd)

	output := env.stdout.String()
	if strings.Contains(output, "2026-03-08") {
		t.Errorf("Expected the oldest day to be dropped, got: %s", output)
	}
	if !strings.Contains(output, "2026-03-09") || !strings.Contains(output, "2026-03-10") {
		t.Errorf("Expected the two most recent days, got: %s", output)
	}
}

func TestRunHistory_DateRange(t *testing.T) {
	env := setupTest(t)
	seedHistory(t, env)
	cmd := newTestCommand(t, registerHistoryFlags, "--from", "2026-03-09", "--to", "2026-03-09")

	runHistory(cmd)

	output := env.stdout.String()
	if strings.Contains(output, "2026-03-08") || strings.Contains(output, "2026-03-10") {
		t.Errorf("Expected only the in-range day, got: %s", output)
	}
	if !strings.Contains(output, "2026-03-09") {
		t.Errorf("Expected the in-range day, got: %s", output)
	}
	if !strings.Contains(output, "1 day") {
		t.Errorf("Expected singular day count, got: %s", output)
	}
}

func TestRunHistory_ConflictingFilters(t *testing.T) {
	env := setupTest(t)
	cmd := newTestCommand(t, registerHistoryFlags, "--last", "2", "--from", "2026-03-01")

	runHistory(cmd)

	if !strings.Contains(env.stderr.String(), "cannot combine") {
		t.Errorf("Expected conflicting-filter error, got: %s", env.stderr.String())
	}
	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
}

func TestRunHistory_InvalidFromDate(t *testing.T) {
	env := setupTest(t)
	cmd := newTestCommand(t, registerHistoryFlags, "--from", "not-a-date")

	runHistory(cmd)

	if !strings.Contains(env.stderr.String(), "invalid date") {
		t.Errorf("Expected date validation error, got: %s", env.stderr.String())
	}
	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
}

func TestNotesCell(t *testing.T) {
	tests := []struct {
		name     string
		notes    string
		expected string
	}{
		{"empty", "", ""},
		{"short", "quiet day", "quiet day"},
		{"newlines flattened", "line one\nline two", "line one line two"},
		{"truncated", "a very long note that keeps going and going", "a very long note that k…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := notesCell(tt.notes); got != tt.expected {
				t.Errorf("notesCell(%q) = %q, expected %q", tt.notes, got, tt.expected)
			}
		})
	}
}

func TestMedsCell(t *testing.T) {
	var m record.Meds
	if got := medsCell(m); got != "0/4" {
		t.Errorf("Expected 0/4, got %s", got)
	}
	m.AM.Multaq = true
	m.AM.Edoxaban = true
	m.PM.Multaq = true
	if got := medsCell(m); got != "3/4" {
		t.Errorf("Expected 3/4, got %s", got)
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		word     string
		count    int
		expected string
	}{
		{"day", 1, "day"},
		{"day", 2, "days"},
		{"entry", 1, "entry"},
		{"entry", 3, "entries"},
	}

	for _, tt := range tests {
		if got := pluralize(tt.word, tt.count); got != tt.expected {
			t.Errorf("pluralize(%q, %d) = %q, expected %q", tt.word, tt.count, got, tt.expected)
		}
	}
}
