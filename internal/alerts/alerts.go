// Package alerts evaluates threshold-based danger and warning flags for a
// daily entry. All functions are pure: no I/O, no hidden state.
package alerts

import (
	"fmt"

	"github.com/afibcare/afibcare/internal/record"
)

// Thresholds holds the vital-sign limits used by the danger checks.
type Thresholds struct {
	PulseLow  float64
	PulseHigh float64
	SysLow    float64
	DiaLow    float64
}

// DefaultThresholds returns the standard limits: pulse outside [50,110] bpm,
// low blood pressure below 90/60.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PulseLow:  50,
		PulseHigh: 110,
		SysLow:    90,
		DiaLow:    60,
	}
}

// Severity grades an entry by its worst flag.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityDanger
)

// Danger returns the danger flags for an entry in fixed priority order:
// pulse out of range, low blood pressure, bleeding, syncope, dyspnea.
// A non-empty result signals the patient should seek immediate attention.
// Vitals that fail to parse (including a recorded zero) are skipped, never
// flagged.
func Danger(e record.DailyEntry, t Thresholds) []string {
	var flags []string

	if pulse, ok := record.ParseVital(e.Pulse); ok {
		if pulse < t.PulseLow || pulse > t.PulseHigh {
			flags = append(flags, fmt.Sprintf("Pulse %g bpm is outside the safe range (%g-%g)", pulse, t.PulseLow, t.PulseHigh))
		}
	}

	sys, sysOK := record.ParseVital(e.BPSys)
	dia, diaOK := record.ParseVital(e.BPDia)
	if sysOK && diaOK && sys < t.SysLow && dia < t.DiaLow {
		flags = append(flags, fmt.Sprintf("Blood pressure %g/%g is critically low", sys, dia))
	}

	if e.Bleeding {
		flags = append(flags, "Bleeding reported")
	}
	if e.Syncope {
		flags = append(flags, "Fainting (syncope) reported")
	}
	if e.Dyspnea {
		flags = append(flags, "Shortness of breath reported")
	}

	return flags
}

// Warning returns the warning flags for an entry in fixed order: dizziness,
// edema, severe fatigue. Warnings are lower severity than danger flags and
// are only meaningful to display when no danger flag is present, but they
// are always computed independently.
func Warning(e record.DailyEntry) []string {
	var flags []string

	if e.Dizziness {
		flags = append(flags, "Dizziness reported")
	}
	if e.Edema {
		flags = append(flags, "Swelling (edema) reported")
	}
	if e.Fatigue == record.FatigueSevere {
		flags = append(flags, "Severe fatigue reported")
	}

	return flags
}

// Evaluate computes both flag lists for an entry.
func Evaluate(e record.DailyEntry, t Thresholds) (danger, warning []string) {
	return Danger(e, t), Warning(e)
}

// SeverityOf grades an entry: danger flags dominate warnings.
func SeverityOf(e record.DailyEntry, t Thresholds) Severity {
	if len(Danger(e, t)) > 0 {
		return SeverityDanger
	}
	if len(Warning(e)) > 0 {
		return SeverityWarning
	}
	return SeverityNone
}
