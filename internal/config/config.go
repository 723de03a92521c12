// Package config handles the TOML configuration file for afibcare.
// All settings have defaults, so the application works without any
// configuration file present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/afibcare/afibcare/internal/alerts"
	"github.com/afibcare/afibcare/internal/osutil"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "afibcare"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
)

// Config represents the application configuration.
type Config struct {
	// PulseLow and PulseHigh bound the safe resting pulse range in bpm.
	PulseLow  float64 `toml:"pulse_low"`
	PulseHigh float64 `toml:"pulse_high"`
	// SysLow and DiaLow are the low blood pressure limits in mmHg. Both
	// readings must fall below their limit to raise the low-BP danger flag.
	SysLow float64 `toml:"sys_low"`
	DiaLow float64 `toml:"dia_low"`
	// WeekStartDay defines which day starts the week (monday or sunday)
	// in the history table.
	WeekStartDay string `toml:"week_start_day"`
	// Theme is the TUI color theme name.
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with the standard alert limits:
// pulse outside [50,110] bpm, blood pressure below 90/60.
func DefaultConfig() Config {
	return Config{
		PulseLow:     50,
		PulseHigh:    110,
		SysLow:       90,
		DiaLow:       60,
		WeekStartDay: "monday",
		Theme:        "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for a cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path, merging it over the defaults.
// A missing file yields the defaults without error; a file that is not valid
// TOML or holds invalid settings is an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Normalize canonicalizes string settings in place.
func (c *Config) Normalize() {
	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks that all settings hold usable values.
func (c Config) Validate() error {
	switch c.WeekStartDay {
	case "monday", "sunday":
	default:
		return fmt.Errorf("invalid week_start_day %q (must be monday or sunday)", c.WeekStartDay)
	}

	if c.PulseLow <= 0 || c.PulseHigh <= 0 || c.SysLow <= 0 || c.DiaLow <= 0 {
		return fmt.Errorf("alert thresholds must be positive")
	}
	if c.PulseLow >= c.PulseHigh {
		return fmt.Errorf("pulse_low (%g) must be below pulse_high (%g)", c.PulseLow, c.PulseHigh)
	}

	return nil
}

// Thresholds returns the configured vital-sign limits for alert evaluation.
func (c Config) Thresholds() alerts.Thresholds {
	return alerts.Thresholds{
		PulseLow:  c.PulseLow,
		PulseHigh: c.PulseHigh,
		SysLow:    c.SysLow,
		DiaLow:    c.DiaLow,
	}
}

// GenerateSampleConfig returns a commented sample config file with the
// default settings.
func GenerateSampleConfig() string {
	d := DefaultConfig()
	return fmt.Sprintf(`# afibcare configuration file

# Danger thresholds for the daily check-in alerts.
# Pulse readings outside [pulse_low, pulse_high] bpm raise a danger flag.
pulse_low = %g
pulse_high = %g

# Blood pressure below sys_low/dia_low mmHg (both readings) raises a
# danger flag.
sys_low = %g
dia_low = %g

# Week start day for the history table: "monday" or "sunday"
week_start_day = %q

# TUI color theme, any bubbletint theme id
#theme = "dracula"
`, d.PulseLow, d.PulseHigh, d.SysLow, d.DiaLow, d.WeekStartDay)
}
