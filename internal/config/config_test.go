package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/afibcare/afibcare/internal/osutil"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PulseLow != 50 || cfg.PulseHigh != 110 {
		t.Errorf("default pulse range = [%g,%g], want [50,110]", cfg.PulseLow, cfg.PulseHigh)
	}
	if cfg.SysLow != 90 || cfg.DiaLow != 60 {
		t.Errorf("default BP limits = %g/%g, want 90/60", cfg.SysLow, cfg.DiaLow)
	}
	if cfg.WeekStartDay != "monday" {
		t.Errorf("default week_start_day = %q, want monday", cfg.WeekStartDay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrDefault(nonExistentFile)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error for non-existent file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoadOrDefault_ExistingValidFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	content := `
pulse_low = 45
pulse_high = 120
week_start_day = "Sunday"
theme = "nord"
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadOrDefault(tmpFile)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}

	if cfg.PulseLow != 45 || cfg.PulseHigh != 120 {
		t.Errorf("pulse range = [%g,%g], want [45,120]", cfg.PulseLow, cfg.PulseHigh)
	}
	// Unset keys keep their defaults.
	if cfg.SysLow != 90 || cfg.DiaLow != 60 {
		t.Errorf("BP limits = %g/%g, want defaults 90/60", cfg.SysLow, cfg.DiaLow)
	}
	// Normalized to lowercase.
	if cfg.WeekStartDay != "sunday" {
		t.Errorf("week_start_day = %q, want sunday", cfg.WeekStartDay)
	}
	if cfg.Theme != "nord" {
		t.Errorf("theme = %q, want nord", cfg.Theme)
	}
}

func TestLoadOrDefault_InvalidTOML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tmpFile, []byte("this is {{ not toml"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := LoadOrDefault(tmpFile)
	if err == nil {
		t.Error("LoadOrDefault() should return error for invalid config file")
	}
}

func TestLoadOrDefault_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad week start", `week_start_day = "tuesday"`},
		{"inverted pulse range", "pulse_low = 120.0\npulse_high = 50.0"},
		{"non-positive threshold", "sys_low = 0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(tmpFile, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			if _, err := LoadOrDefault(tmpFile); err == nil {
				t.Error("LoadOrDefault() should reject invalid settings")
			}
		})
	}
}

func TestThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PulseLow = 40

	th := cfg.Thresholds()
	if th.PulseLow != 40 || th.PulseHigh != 110 || th.SysLow != 90 || th.DiaLow != 60 {
		t.Errorf("Thresholds() = %+v, does not mirror config", th)
	}
}

func TestGenerateSampleConfig_RoundTrips(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tmpFile, []byte(GenerateSampleConfig()), 0644); err != nil {
		t.Fatalf("failed to write sample config: %v", err)
	}

	cfg, err := LoadOrDefault(tmpFile)
	if err != nil {
		t.Fatalf("sample config should parse cleanly: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample config = %+v, want the defaults", cfg)
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned error: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(AppName, ConfigFile)) {
		t.Errorf("config path = %q, want .../%s/%s", path, AppName, ConfigFile)
	}
}

func TestGetConfigPath_UserConfigDirError(t *testing.T) {
	defer osutil.ResetProvider()
	osutil.SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) {
			return "", errors.New("no home directory")
		},
	})

	if _, err := GetConfigPath(); err == nil {
		t.Error("expected error when UserConfigDir fails")
	}
}

func TestGetConfigPath_MkdirAllError(t *testing.T) {
	defer osutil.ResetProvider()
	osutil.SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "/tmp", nil },
		MkdirAllFn: func(path string, perm os.FileMode) error {
			return errors.New("read-only filesystem")
		},
	})

	if _, err := GetConfigPath(); err == nil {
		t.Error("expected error when MkdirAll fails")
	}
}
