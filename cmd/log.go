package cmd

import (
	"fmt"

	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/record"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record or update a daily check-in",
	Long: `Record vitals, symptoms, medication doses or notes for a date
(default today). Only the flags you pass are changed; everything else in
the entry, including sibling medication doses, is preserved.

Vitals are recorded as entered. A value that is not a number, or a zero,
counts as "not recorded" for alerts and charts.

Examples:
  afibcare log --pulse 72 --sys 118 --dia 76
  afibcare log --dizziness --fatigue 1
  afibcare log --am-multaq --am-edoxaban --pm-multaq=false
  afibcare log --date 2026-03-01 --notes "felt fine after lunch"
  afibcare log --pulse "" --date 2026-03-01    Clear a recorded pulse`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runLog(cmd)
	},
}

func init() {
	registerLogFlags(logCmd.Flags())
}

func registerLogFlags(flags *pflag.FlagSet) {
	flags.String("date", "", "Date to record for (YYYY-MM-DD, default today)")
	flags.String("pulse", "", "Resting pulse in bpm")
	flags.String("sys", "", "Systolic blood pressure in mmHg")
	flags.String("dia", "", "Diastolic blood pressure in mmHg")
	flags.Bool("dizziness", false, "Dizziness today")
	flags.Bool("syncope", false, "Fainting (syncope) today")
	flags.Bool("dyspnea", false, "Shortness of breath today")
	flags.Bool("edema", false, "Swelling (edema) today")
	flags.Bool("bleeding", false, "Unusual bleeding today")
	flags.String("fatigue", "", "Fatigue level: 0 (none), 1 (mild), 2 (severe)")
	flags.Bool("am-multaq", false, "Morning Multaq dose taken")
	flags.Bool("am-edoxaban", false, "Morning edoxaban dose taken")
	flags.Bool("am-bisoprolol", false, "Morning bisoprolol dose taken")
	flags.Bool("pm-multaq", false, "Evening Multaq dose taken")
	flags.String("notes", "", "Free-text notes")
}

// runLog builds a patch from the changed flags and merges it into the
// entry for the target date.
func runLog(cmd *cobra.Command) {
	services := newServices()
	if services == nil {
		return
	}

	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = dateutil.Format(deps.Now())
	}

	patch := buildPatch(cmd)
	if patch.IsEmpty() {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No fields to record")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass at least one field flag, e.g. --pulse 72")
		deps.Exit(1)
		return
	}

	day, warning, err := services.Checkin.Log(date, patch)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: See 'afibcare log --help' for the accepted values")
		deps.Exit(1)
		return
	}
	warnStoreRecovered(warning)

	_, _ = fmt.Fprintf(deps.Stdout, "Recorded check-in for %s\n", date)
	printAlerts(day)
}

// buildPatch translates changed flags into a per-level patch. Only flags
// the user actually passed end up in the patch, so unset flags never
// overwrite stored values.
func buildPatch(cmd *cobra.Command) record.Patch {
	flags := cmd.Flags()
	var p record.Patch

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	boolean := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	p.Pulse = str("pulse")
	p.BPSys = str("sys")
	p.BPDia = str("dia")
	p.Dizziness = boolean("dizziness")
	p.Syncope = boolean("syncope")
	p.Dyspnea = boolean("dyspnea")
	p.Edema = boolean("edema")
	p.Bleeding = boolean("bleeding")
	p.Fatigue = str("fatigue")
	p.Notes = str("notes")

	am := record.MorningPatch{
		Multaq:     boolean("am-multaq"),
		Edoxaban:   boolean("am-edoxaban"),
		Bisoprolol: boolean("am-bisoprolol"),
	}
	pm := record.EveningPatch{Multaq: boolean("pm-multaq")}

	if am != (record.MorningPatch{}) || pm != (record.EveningPatch{}) {
		p.Meds = &record.MedsPatch{}
		if am != (record.MorningPatch{}) {
			p.Meds.AM = &am
		}
		if pm != (record.EveningPatch{}) {
			p.Meds.PM = &pm
		}
	}

	return p
}
