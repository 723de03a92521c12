package main

import (
	"fmt"
	"os"

	"github.com/afibcare/afibcare/cmd"
	"github.com/afibcare/afibcare/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc allows tests to intercept the process exit
var exitFunc = os.Exit

func run() int {
	cmd.SetVersionInfo(version, commit, date)

	// Fail early if the config location cannot be determined at all;
	// individual commands handle a missing or invalid config file.
	if _, err := config.GetConfigPath(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: failed to determine config location: %v\n", err)
		return 1
	}

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run())
}
