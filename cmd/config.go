package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for afibcare.

Shows the configuration file location, whether it exists, and all current
settings. Values from the config file are merged over sensible defaults,
so afibcare works without any configuration file at all.

Default settings:
  - pulse_low: 50          pulse below this raises a danger alert
  - pulse_high: 110        pulse above this raises a danger alert
  - sys_low: 90            systolic threshold for the low-BP alert
  - dia_low: 60            diastolic threshold for the low-BP alert
  - week_start_day: monday
  - theme: (terminal default)

Examples:

  Display current configuration:
    afibcare config

  Create a sample config file to edit:
    afibcare config init

Configuration file location:
  ~/.config/afibcare/config.toml     Linux/macOS
  %APPDATA%\afibcare\config.toml     Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration file",
	Long: `Create a sample configuration file with the default settings.

The file is written to the standard config location and fails if a
config file already exists there.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	services := newServices()
	if services == nil {
		return
	}

	cfg := services.Config.Get()
	configPath := services.Config.GetPath()
	fileExists := services.Config.Exists()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for afibcare")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Pulse Low:       %.0f bpm\n", cfg.PulseLow)
	_, _ = fmt.Fprintf(deps.Stdout, "Pulse High:      %.0f bpm\n", cfg.PulseHigh)
	_, _ = fmt.Fprintf(deps.Stdout, "Systolic Low:    %.0f mmHg\n", cfg.SysLow)
	_, _ = fmt.Fprintf(deps.Stdout, "Diastolic Low:   %.0f mmHg\n", cfg.DiaLow)
	_, _ = fmt.Fprintf(deps.Stdout, "Week Start Day:  %s\n", cfg.WeekStartDay)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:           (terminal default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'afibcare config init' to create a config file to customize settings.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes a sample configuration file
func initConfig() {
	services := newServices()
	if services == nil {
		return
	}

	if err := services.Config.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: could not create the config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created a sample config file at %s\n", services.Config.GetPath())
}
