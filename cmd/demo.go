package cmd

import (
	"fmt"

	"github.com/afibcare/afibcare/internal/demo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replace the store with generated demonstration data",
	Long: `Fill the store with synthetic check-ins for demonstrating the
history table and trend charts.

This REPLACES all recorded entries. The prior store is rotated into a
backup first ('afibcare restore' brings it back), and a confirmation
prompt is shown unless --yes is specified.

Examples:
  afibcare demo
  afibcare demo --days 90 --yes
  afibcare demo --seed 7        Reproducible demo data`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(cmd)
	},
}

func init() {
	registerDemoFlags(demoCmd.Flags())
}

func registerDemoFlags(flags *pflag.FlagSet) {
	flags.Int("days", demo.DefaultDays, "Number of consecutive days to generate, ending today")
	flags.Int64("seed", 0, "Random seed (default: time-based, different every run)")
	flags.BoolP("yes", "y", false, "skip confirmation prompt")
}

func runDemo(cmd *cobra.Command) {
	services := newServices()
	if services == nil {
		return
	}

	days, _ := cmd.Flags().GetInt("days")
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		if !confirm("Replace ALL recorded entries with demo data? A backup is kept.") {
			_, _ = fmt.Fprintln(deps.Stdout, "Demo fill cancelled")
			return
		}
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = deps.Now().UnixNano()
	}

	n, err := services.Demo.Fill(deps.Now(), days, seed)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Generated %d demo %s\n", n, pluralize("entry", n))
	_, _ = fmt.Fprintln(deps.Stdout, "Hint: 'afibcare restore' brings the previous store back")
}
