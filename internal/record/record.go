// Package record defines the daily check-in data model.
package record

import "strconv"

// Fatigue severity levels. Stored as strings so the persisted document keeps
// the same shape as the form input.
const (
	FatigueNone   = "0"
	FatigueMild   = "1"
	FatigueSevere = "2"
)

// MorningDoses holds the three independent morning medication doses.
type MorningDoses struct {
	Multaq     bool `json:"multaq"`
	Edoxaban   bool `json:"edoxaban"`
	Bisoprolol bool `json:"bisoprolol"`
}

// EveningDoses holds the single evening medication dose.
type EveningDoses struct {
	Multaq bool `json:"multaq"`
}

// Meds groups medication adherence by time of day.
type Meds struct {
	AM MorningDoses `json:"am"`
	PM EveningDoses `json:"pm"`
}

// DailyEntry is one patient record for a single calendar date.
// Vitals are numeric-as-text fields: the form accepts arbitrary text and an
// empty string means "not recorded". Parsing happens on demand via ParseVital.
type DailyEntry struct {
	Date      string `json:"date"`
	Pulse     string `json:"pulse"`
	BPSys     string `json:"bpSys"`
	BPDia     string `json:"bpDia"`
	Dizziness bool   `json:"dizziness"`
	Syncope   bool   `json:"syncope"`
	Dyspnea   bool   `json:"dyspnea"`
	Edema     bool   `json:"edema"`
	Bleeding  bool   `json:"bleeding"`
	Fatigue   string `json:"fatigue"`
	Meds      Meds   `json:"meds"`
	Notes     string `json:"notes"`
}

// Default returns the all-empty entry for a date. The UI synthesizes this in
// memory for dates without a stored entry; it is never persisted until the
// user changes a field.
func Default(date string) DailyEntry {
	return DailyEntry{
		Date:    date,
		Fatigue: FatigueNone,
	}
}

// ParseVital parses a numeric-as-text vital reading. The second return value
// is false when the field holds no usable value: empty text, non-numeric
// text, or zero. A reading of 0 is not a survivable vital, so it is treated
// as "not recorded" rather than a genuine measurement.
func ParseVital(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}

// ValidFatigue reports whether s is one of the known fatigue levels.
func ValidFatigue(s string) bool {
	switch s {
	case FatigueNone, FatigueMild, FatigueSevere:
		return true
	}
	return false
}

// FatigueLabel returns a human-readable label for a fatigue level.
func FatigueLabel(s string) string {
	switch s {
	case FatigueMild:
		return "mild"
	case FatigueSevere:
		return "severe"
	default:
		return "none"
	}
}
