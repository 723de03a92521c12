// Package views contains the individual tab views of the TUI.
package views

import (
	"strings"

	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/tui/ui"
)

// vitalText renders a numeric-as-text vital with its unit, or a dash when
// no usable value is recorded.
func vitalText(s, unit string) string {
	if _, ok := record.ParseVital(s); !ok {
		return "—"
	}
	return s + " " + unit
}

// bpText renders the combined blood pressure reading.
func bpText(sys, dia string) string {
	_, sysOK := record.ParseVital(sys)
	_, diaOK := record.ParseVital(dia)
	if !sysOK && !diaOK {
		return "—"
	}
	if !sysOK {
		sys = "?"
	}
	if !diaOK {
		dia = "?"
	}
	return sys + "/" + dia + " mmHg"
}

// checkbox renders a toggle state.
func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// severityMarker returns the alert marker for a day.
func severityMarker(day service.Day, styles ui.Styles) string {
	switch {
	case len(day.Danger) > 0:
		return styles.Danger.Render("!!")
	case len(day.Warning) > 0:
		return styles.Warning.Render("!")
	default:
		return ""
	}
}

// renderAlerts renders a day's alert flags: danger flags when present,
// warnings otherwise. Danger suppresses warning display.
func renderAlerts(day *service.Day, styles ui.Styles) string {
	var b strings.Builder

	if len(day.Danger) > 0 {
		b.WriteString(styles.Danger.Render("Seek immediate medical attention:"))
		b.WriteString("\n")
		for _, flag := range day.Danger {
			b.WriteString(styles.Danger.Render("  !! " + flag))
			b.WriteString("\n")
		}
		return b.String()
	}

	if len(day.Warning) > 0 {
		b.WriteString(styles.Warning.Render("Worth noting:"))
		b.WriteString("\n")
		for _, flag := range day.Warning {
			b.WriteString(styles.Warning.Render("  ! " + flag))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}
