package cmd

import (
	"fmt"

	"github.com/afibcare/afibcare/internal/series"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart [pulse|bp]",
	Short: "Draw a terminal trend chart of recorded vitals",
	Long: `Draw a sparkline chart of recorded vitals, ascending by date.
Days without a usable reading render as a gap marker (·).

Examples:
  afibcare chart            Pulse trend over the last 28 days
  afibcare chart bp         Blood pressure trend
  afibcare chart pulse --last 90`,
	ValidArgs: []string{"pulse", "bp"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		metric := "pulse"
		if len(args) > 0 {
			metric = args[0]
		}
		runChart(cmd, metric)
	},
}

func init() {
	registerChartFlags(chartCmd.Flags())
}

func registerChartFlags(flags *pflag.FlagSet) {
	flags.Int("last", 28, "Chart the last N recorded days (0 for all)")
}

func runChart(cmd *cobra.Command, metric string) {
	services := newServices()
	if services == nil {
		return
	}

	last, _ := cmd.Flags().GetInt("last")
	points, warning := services.History.Series(last)
	warnStoreRecovered(warning)

	if len(points) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries to chart")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Record vitals with 'afibcare log' or try 'afibcare demo'")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s – %s (%d days)\n",
		points[0].Date, points[len(points)-1].Date, len(points))

	switch metric {
	case "bp":
		sys := series.SysValues(points)
		dia := series.DiaValues(points)
		_, _ = fmt.Fprintf(deps.Stdout, "Systolic   %s  %s\n", series.Sparkline(sys), series.Summary(sys))
		_, _ = fmt.Fprintf(deps.Stdout, "Diastolic  %s  %s\n", series.Sparkline(dia), series.Summary(dia))
	default:
		pulse := series.PulseValues(points)
		_, _ = fmt.Fprintf(deps.Stdout, "Pulse      %s  %s\n", series.Sparkline(pulse), series.Summary(pulse))
	}
}
