package cmd

import (
	"errors"
	"fmt"

	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove recorded entries",
	Long: `Remove a single day's entry or wipe the whole record store.

A backup of the current store is written before anything is removed,
so a mistaken reset can be undone with 'afibcare restore'.`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	registerResetFlags(resetCmd.Flags())
}

func registerResetFlags(flags *pflag.FlagSet) {
	flags.String("date", "", "date of the entry to remove (YYYY-MM-DD, defaults to today)")
	flags.Bool("all", false, "remove every recorded entry")
	flags.BoolP("yes", "y", false, "skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	all, _ := cmd.Flags().GetBool("all")
	date, _ := cmd.Flags().GetString("date")
	yes, _ := cmd.Flags().GetBool("yes")

	if all && cmd.Flags().Changed("date") {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: --all and --date cannot be combined")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: use --date to remove one entry, or --all for everything")
		deps.Exit(1)
		return
	}

	services := newServices()
	if services == nil {
		return
	}

	if all {
		resetAll(services, yes)
		return
	}

	if date == "" {
		date = dateutil.Format(deps.Now())
	}
	resetDate(services, date, yes)
}

func resetAll(services *service.Services, yes bool) {
	if !yes && !confirm("Remove ALL recorded entries? A backup is kept.") {
		_, _ = fmt.Fprintln(deps.Stdout, "Cancelled.")
		return
	}

	count, err := services.Checkin.ResetAll()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: could not reset the record store")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	if count == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing recorded yet, nothing to remove.")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Removed %d %s. Run 'afibcare restore' to undo.\n", count, pluralize("entry", count))
}

func resetDate(services *service.Services, date string, yes bool) {
	if !yes && !confirm(fmt.Sprintf("Remove the entry for %s? A backup is kept.", date)) {
		_, _ = fmt.Fprintln(deps.Stdout, "Cancelled.")
		return
	}

	removed, err := services.Checkin.Reset(date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: invalid date %q\n", date)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: dates use the YYYY-MM-DD format, e.g. 2026-08-29")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: could not reset the entry")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}
	if !removed {
		_, _ = fmt.Fprintf(deps.Stdout, "Nothing recorded for %s.\n", date)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Removed the entry for %s. Run 'afibcare restore' to undo.\n", date)
}
