// Package series derives chronologically ordered vital-sign series from the
// store for charting. Pure functions, no side effects.
package series

import (
	"sort"

	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/store"
)

// Point is one charted day. Nil values mark missing data: an empty, invalid,
// or zero reading collapses to "no data point" rather than plotting a zero.
type Point struct {
	Date  string
	Pulse *float64
	Sys   *float64
	Dia   *float64
}

// Build returns all entries as points sorted ascending by date string.
// Lexicographic order of YYYY-MM-DD keys coincides with chronological order.
func Build(s store.Store) []Point {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]Point, len(dates))
	for i, date := range dates {
		e := s[date]
		points[i] = Point{
			Date:  date,
			Pulse: vital(e.Pulse),
			Sys:   vital(e.BPSys),
			Dia:   vital(e.BPDia),
		}
	}
	return points
}

// Tail returns the last n points of a series.
func Tail(points []Point, n int) []Point {
	if n <= 0 || n >= len(points) {
		return points
	}
	return points[len(points)-n:]
}

func vital(s string) *float64 {
	v, ok := record.ParseVital(s)
	if !ok {
		return nil
	}
	return &v
}
