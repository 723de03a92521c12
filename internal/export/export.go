// Package export serializes the store for file export.
package export

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/store"
)

// MIMEType is the content type of the CSV document.
const MIMEType = "text/csv;charset=utf-8;"

// Columns is the fixed CSV header, in output order.
var Columns = []string{
	"date",
	"pulse",
	"bpSys",
	"bpDia",
	"dizziness",
	"syncope",
	"dyspnea",
	"edema",
	"bleeding",
	"fatigue",
	"medAmMultaq",
	"medAmEdoxaban",
	"medAmBisoprolol",
	"medPmMultaq",
	"notes",
}

// notesSanitizer flattens embedded line breaks so every entry stays on one
// CSV row.
var notesSanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// CSV renders the store as a comma-delimited document: the header row plus
// one row per entry, ascending by date. Booleans render via their natural
// text form. Fields are comma-joined without quoting, so a comma inside a
// field (notes in particular) produces a malformed row; the format is kept
// for compatibility with existing exports.
func CSV(s store.Store) string {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	lines := make([]string, 0, len(dates)+1)
	lines = append(lines, strings.Join(Columns, ","))
	for _, date := range dates {
		lines = append(lines, row(s[date]))
	}
	return strings.Join(lines, "\n")
}

func row(e record.DailyEntry) string {
	fields := []string{
		e.Date,
		e.Pulse,
		e.BPSys,
		e.BPDia,
		strconv.FormatBool(e.Dizziness),
		strconv.FormatBool(e.Syncope),
		strconv.FormatBool(e.Dyspnea),
		strconv.FormatBool(e.Edema),
		strconv.FormatBool(e.Bleeding),
		e.Fatigue,
		strconv.FormatBool(e.Meds.AM.Multaq),
		strconv.FormatBool(e.Meds.AM.Edoxaban),
		strconv.FormatBool(e.Meds.AM.Bisoprolol),
		strconv.FormatBool(e.Meds.PM.Multaq),
		notesSanitizer.Replace(e.Notes),
	}
	return strings.Join(fields, ",")
}

// Filename returns the export filename for a given day: afibcare_<date>.csv.
func Filename(date string) string {
	return "afibcare_" + date + ".csv"
}

// Document is the JSON export envelope.
type Document struct {
	Metadata struct {
		ExportTimestamp time.Time `json:"export_timestamp"`
		TotalEntries    int       `json:"total_entries"`
	} `json:"metadata"`
	Entries map[string]record.DailyEntry `json:"entries"`
}

// JSON renders the store as an indented JSON document with export metadata.
func JSON(s store.Store, now time.Time) ([]byte, error) {
	var doc Document
	doc.Metadata.ExportTimestamp = now
	doc.Metadata.TotalEntries = len(s)
	doc.Entries = s
	return json.MarshalIndent(doc, "", "  ")
}
