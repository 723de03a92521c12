// Package demo generates synthetic check-in data for demonstrating the
// history table and trend charts. The generated store replaces any
// existing entries; it is demonstrative data, not a test fixture.
package demo

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/store"
)

// DefaultDays is the default span of generated entries.
const DefaultDays = 28

// cyclePeriod is the length in days of the sinusoidal vitals cycle.
const cyclePeriod = 14

// Generate builds a store with one entry per day for days consecutive
// calendar dates ending at today. Vitals follow a smooth oscillating
// baseline with bounded jitter; symptoms appear with low probability.
// Output is deterministic for a given rng seed.
func Generate(today time.Time, days int, rng *rand.Rand) store.Store {
	if days <= 0 {
		return store.Store{}
	}

	dates := dateutil.LastN(today, days)
	s := make(store.Store, len(dates))

	for i, date := range dates {
		phase := 2 * math.Pi * float64(i) / cyclePeriod

		pulse := 72 + 9*math.Sin(phase) + jitter(rng, 4)
		sys := 124 + 7*math.Sin(phase+1.1) + jitter(rng, 5)
		dia := 78 + 5*math.Sin(phase+0.6) + jitter(rng, 3)

		e := record.Default(date)
		e.Pulse = formatVital(pulse)
		e.BPSys = formatVital(sys)
		e.BPDia = formatVital(dia)

		e.Dizziness = rng.Float64() < 0.08
		e.Edema = rng.Float64() < 0.05
		e.Dyspnea = rng.Float64() < 0.04
		e.Bleeding = rng.Float64() < 0.02
		e.Syncope = rng.Float64() < 0.01

		switch roll := rng.Float64(); {
		case roll < 0.05:
			e.Fatigue = record.FatigueSevere
		case roll < 0.25:
			e.Fatigue = record.FatigueMild
		}

		// Good but imperfect adherence.
		e.Meds.AM.Multaq = rng.Float64() < 0.95
		e.Meds.AM.Edoxaban = rng.Float64() < 0.95
		e.Meds.AM.Bisoprolol = rng.Float64() < 0.95
		e.Meds.PM.Multaq = rng.Float64() < 0.9

		s[date] = e
	}

	return s
}

// jitter returns a uniform random value in [-amplitude, amplitude].
func jitter(rng *rand.Rand, amplitude float64) float64 {
	return (2*rng.Float64() - 1) * amplitude
}

// formatVital renders a generated reading the way a patient would type it:
// a whole number.
func formatVital(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
