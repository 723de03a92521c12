package cmd

import (
	"fmt"
	"os"

	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for afibcare.

The TUI provides a full-featured interface for daily check-ins with
keyboard navigation, multiple views, and threshold alerts as you type.

Views available:
  - Check-in: Record today's vitals, symptoms, fatigue and meds
  - History: Browse recorded days with alert markers
  - Charts: Pulse and blood pressure trend sparklines
  - Learn: Short notes on what each alert means

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-4: Jump to specific view
  - j/k or arrows: Navigate within lists
  - ?: Show help
  - q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
