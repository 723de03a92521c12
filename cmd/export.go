package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export check-in records to various formats",
	Long: `Export all recorded check-ins for backup, spreadsheets or sharing
with a clinician.

Available formats:
  csv     One row per day, fixed columns, ascending by date
  json    The full store document with export metadata

CSV fields are comma-joined without quoting; a comma inside the notes
field breaks that row's column alignment.

Examples:
  afibcare export csv                  Write afibcare_<today>.csv
  afibcare export csv --output -       Write CSV to stdout
  afibcare export json                 Write JSON to stdout
  afibcare export json --output backup.json`,
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export check-ins as CSV",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		exportCSV(output)
	},
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export check-ins as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		exportJSON(output)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportJSONCmd)

	exportCSVCmd.Flags().String("output", "", "Output file (default afibcare_<today>.csv, - for stdout)")
	exportJSONCmd.Flags().String("output", "", "Output file (default stdout)")
}

// exportCSV handles the export csv command logic
func exportCSV(output string) {
	services := newServices()
	if services == nil {
		return
	}

	doc, warning := services.Export.CSV()
	warnStoreRecovered(warning)

	if output == "-" {
		_, _ = fmt.Fprintln(deps.Stdout, doc)
		return
	}

	if output == "" {
		output = services.Export.DefaultCSVName(deps.Now())
	}
	if err := os.WriteFile(output, []byte(doc), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write export file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", output)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Exported to %s\n", output)
}

// exportJSON handles the export json command logic
func exportJSON(output string) {
	services := newServices()
	if services == nil {
		return
	}

	data, warning, err := services.Export.JSON(deps.Now())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	warnStoreRecovered(warning)

	if output == "" || output == "-" {
		_, _ = fmt.Fprintln(deps.Stdout, string(data))
		return
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write export file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", output)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Exported to %s\n", output)
}
