package cmd

import (
	"fmt"
	"strconv"

	"github.com/afibcare/afibcare/internal/store"
	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore the record store from a backup",
	Long: `Restore the record store from a backup file.

By default, restores from the most recent backup (.bak.1).
Optionally specify a backup number to restore from (1-3).

Examples:
  afibcare restore       Restore from most recent backup
  afibcare restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restoreFromBackup(args)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func restoreFromBackup(args []string) {
	storePath, err := deps.StorePath()
	if err != nil {
		reportStorePathError(err)
		return
	}

	backups := store.ListBackups(storePath)
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available.")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: invalid backup number %q\n", args[0])
			deps.Exit(1)
			return
		}
		if num < 1 || num > 3 {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: backup number must be between 1 and 3 (got %d)\n", num)
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	found := false
	for _, backup := range backups {
		if backup.Number == backupNum {
			found = true
			break
		}
	}
	if !found {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: backup %d does not exist\n", backupNum)
		deps.Exit(1)
		return
	}

	if err := store.RestoreBackup(storePath, backupNum); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: could not restore the backup")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored the record store from backup %d.\n", backupNum)
}
