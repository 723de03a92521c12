package cmd

import (
	"fmt"
	"strings"

	"github.com/afibcare/afibcare/internal/alerts"
	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded check-ins as a table",
	Long: `Show recorded check-ins ascending by date.

Each row is marked with its alert severity:
  !!  at least one danger flag (seek immediate attention)
  !   warning flags only

Examples:
  afibcare history                      All recorded days
  afibcare history --last 7             The most recent week
  afibcare history --from 2026-03-01 --to 2026-03-14`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runHistory(cmd)
	},
}

func init() {
	registerHistoryFlags(historyCmd.Flags())
}

func registerHistoryFlags(flags *pflag.FlagSet) {
	flags.Int("last", 0, "Show only the last N recorded days")
	flags.String("from", "", "Start date (YYYY-MM-DD)")
	flags.String("to", "", "End date (YYYY-MM-DD)")
}

func runHistory(cmd *cobra.Command) {
	services := newServices()
	if services == nil {
		return
	}

	last, _ := cmd.Flags().GetInt("last")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	result, err := services.History.List(from, to, last)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	warnStoreRecovered(result.Warning)

	if len(result.Days) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries recorded")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Record today with 'afibcare log' or try 'afibcare demo'")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%-12s %-6s %-9s %-8s %-8s %-3s %s\n",
		"Date", "Pulse", "BP", "Fatigue", "Meds", "", "Notes")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 72))

	for _, day := range result.Days {
		e := day.Entry
		_, _ = fmt.Fprintf(deps.Stdout, "%-12s %-6s %-9s %-8s %-8s %-3s %s\n",
			e.Date,
			vitalCell(e.Pulse),
			bpCell(e.BPSys, e.BPDia),
			record.FatigueLabel(e.Fatigue),
			medsCell(e.Meds),
			markerFor(day),
			notesCell(e.Notes))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 72))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s\n", len(result.Days), pluralize("day", len(result.Days)))
}

// markerFor returns the alert marker for a history row.
func markerFor(day service.Day) string {
	switch day.Severity() {
	case alerts.SeverityDanger:
		return "!!"
	case alerts.SeverityWarning:
		return "!"
	default:
		return ""
	}
}

func vitalCell(s string) string {
	if _, ok := record.ParseVital(s); !ok {
		return "—"
	}
	return s
}

func bpCell(sys, dia string) string {
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
	return sys + "/" + dia
}

func medsCell(m record.Meds) string {
	taken := 0
	for _, dose := range []bool{m.AM.Multaq, m.AM.Edoxaban, m.AM.Bisoprolol, m.PM.Multaq} {
		if dose {
			taken++
		}
	}
	return fmt.Sprintf("%d/4", taken)
}

// notesCell flattens and truncates notes to keep the table one line per day.
func notesCell(notes string) string {
	notes = strings.Join(strings.Fields(notes), " ")
	if len(notes) > 24 {
		return notes[:23] + "…"
	}
	return notes
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}
