package cmd

import (
	"io"
	"os"
	"time"

	"github.com/afibcare/afibcare/internal/config"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/store"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	StorePath  func() (string, error)
	ConfigPath func() (string, error)
	Now        func() time.Time
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		StorePath:  store.DefaultPath,
		ConfigPath: config.GetConfigPath,
		Now:        time.Now,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// newServices builds the service layer from the injected paths. It returns
// nil after reporting and exiting when the paths or config are unusable.
func newServices() *service.Services {
	storePath, err := deps.StorePath()
	if err != nil {
		reportStorePathError(err)
		return nil
	}

	configPath, err := deps.ConfigPath()
	if err != nil {
		reportConfigPathError(err)
		return nil
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		reportConfigLoadError(err, configPath)
		return nil
	}

	return service.NewServicesWithPaths(storePath, configPath, cfg)
}
