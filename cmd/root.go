package cmd

import (
	"fmt"
	"strings"

	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "afibcare",
	Short: "A daily heart-health check-in application",
	Long: `afibcare is a CLI tool for tracking daily vitals, symptoms and
medication adherence, with threshold-based alerts and trend charts.

Usage:
  afibcare                                  Show today's check-in
  afibcare log --pulse 72 --sys 118 --dia 76   Record today's vitals
  afibcare log --date 2026-03-01 --dizziness   Record a symptom for a date
  afibcare history --last 7                 Show the last week of entries
  afibcare chart pulse                      Draw the pulse trend chart
  afibcare export csv                       Export all entries as CSV
  afibcare demo                             Fill the store with demo data
  afibcare reset --date 2026-03-01          Remove one day's entry
  afibcare tui                              Launch the interactive UI

One entry exists per calendar date; repeating a log for the same date
merges the new fields into the existing entry.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		showToday()
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(resetCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"afibcare version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// showToday displays the check-in summary for the current date.
func showToday() {
	services := newServices()
	if services == nil {
		return
	}

	date := dateutil.Format(deps.Now())
	day, warning, err := services.Checkin.Get(date)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	warnStoreRecovered(warning)

	printDay(day)
}

// printDay renders a day's entry and its alert flags.
func printDay(day *service.Day) {
	e := day.Entry

	title := fmt.Sprintf("Check-in for %s", e.Date)
	if !day.Stored {
		title += " (nothing recorded yet)"
	}
	_, _ = fmt.Fprintln(deps.Stdout, title)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	_, _ = fmt.Fprintf(deps.Stdout, "Pulse:           %s\n", formatVital(e.Pulse, "bpm"))
	_, _ = fmt.Fprintf(deps.Stdout, "Blood pressure:  %s\n", formatBP(e.BPSys, e.BPDia))
	_, _ = fmt.Fprintf(deps.Stdout, "Symptoms:        %s\n", formatSymptoms(e))
	_, _ = fmt.Fprintf(deps.Stdout, "Fatigue:         %s\n", record.FatigueLabel(e.Fatigue))
	_, _ = fmt.Fprintf(deps.Stdout, "Meds:            %s\n", formatMeds(e.Meds))
	if e.Notes != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Notes:           %s\n", e.Notes)
	}

	printAlerts(day)
}

// printAlerts renders danger flags, or warnings when no danger flag is
// present. Danger takes priority and suppresses warning display.
func printAlerts(day *service.Day) {
	if len(day.Danger) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Seek immediate medical attention:")
		for _, flag := range day.Danger {
			_, _ = fmt.Fprintf(deps.Stdout, "  !! %s\n", flag)
		}
		return
	}
	if len(day.Warning) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Worth noting:")
		for _, flag := range day.Warning {
			_, _ = fmt.Fprintf(deps.Stdout, "  ! %s\n", flag)
		}
	}
}

// formatVital renders a numeric-as-text vital with its unit, or a dash
// when no usable value is recorded.
func formatVital(s, unit string) string {
	if _, ok := record.ParseVital(s); !ok {
		return "—"
	}
	return s + " " + unit
}

func formatBP(sys, dia string) string {
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

func formatSymptoms(e record.DailyEntry) string {
	var symptoms []string
	if e.Dizziness {
		symptoms = append(symptoms, "dizziness")
	}
	if e.Syncope {
		symptoms = append(symptoms, "syncope")
	}
	if e.Dyspnea {
		symptoms = append(symptoms, "dyspnea")
	}
	if e.Edema {
		symptoms = append(symptoms, "edema")
	}
	if e.Bleeding {
		symptoms = append(symptoms, "bleeding")
	}
	if len(symptoms) == 0 {
		return "none"
	}
	return strings.Join(symptoms, ", ")
}

func formatMeds(m record.Meds) string {
	am := 0
	if m.AM.Multaq {
		am++
	}
	if m.AM.Edoxaban {
		am++
	}
	if m.AM.Bisoprolol {
		am++
	}
	pm := 0
	if m.PM.Multaq {
		pm++
	}
	return fmt.Sprintf("AM %d/3  PM %d/1", am, pm)
}
