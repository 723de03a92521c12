package series

import (
	"fmt"
	"math"
	"strings"
)

// sparkRunes are the eight block levels used to draw a sparkline.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// gapRune marks a day without a data point.
const gapRune = '·'

// Sparkline renders values as a single-line block chart. Nil values render
// as a gap marker. A flat series renders at mid height.
func Sparkline(values []*float64) string {
	lo, hi, any := bounds(values)
	if !any {
		return strings.Repeat(string(gapRune), len(values))
	}

	span := hi - lo
	var b strings.Builder
	for _, v := range values {
		if v == nil {
			b.WriteRune(gapRune)
			continue
		}
		if span == 0 {
			b.WriteRune(sparkRunes[len(sparkRunes)/2])
			continue
		}
		idx := int(math.Round((*v - lo) / span * float64(len(sparkRunes)-1)))
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// Summary returns a "min avg max" line for a series, or a placeholder when
// the series holds no data points.
func Summary(values []*float64) string {
	lo, hi, any := bounds(values)
	if !any {
		return "no data"
	}

	sum, n := 0.0, 0
	for _, v := range values {
		if v != nil {
			sum += *v
			n++
		}
	}
	return fmt.Sprintf("min %g  avg %.0f  max %g", lo, sum/float64(n), hi)
}

// PulseValues extracts the pulse column of a series.
func PulseValues(points []Point) []*float64 {
	out := make([]*float64, len(points))
	for i, p := range points {
		out[i] = p.Pulse
	}
	return out
}

// SysValues extracts the systolic column of a series.
func SysValues(points []Point) []*float64 {
	out := make([]*float64, len(points))
	for i, p := range points {
		out[i] = p.Sys
	}
	return out
}

// DiaValues extracts the diastolic column of a series.
func DiaValues(points []Point) []*float64 {
	out := make([]*float64, len(points))
	for i, p := range points {
		out[i] = p.Dia
	}
	return out
}

func bounds(values []*float64) (lo, hi float64, any bool) {
	for _, v := range values {
		if v == nil {
			continue
		}
		if !any {
			lo, hi, any = *v, *v, true
			continue
		}
		if *v < lo {
			lo = *v
		}
		if *v > hi {
			hi = *v
		}
	}
	return lo, hi, any
}
