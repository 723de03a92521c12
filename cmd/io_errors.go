package cmd

import (
	"bufio"
	"fmt"
	"strings"
)

func reportStorePathError(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine store location")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	deps.Exit(1)
}

func reportConfigPathError(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	deps.Exit(1)
}

func reportConfigLoadError(err error, configPath string) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
	deps.Exit(1)
}

// warnStoreRecovered surfaces a store recovery warning on stderr. The
// command still proceeds with the substituted empty store.
func warnStoreRecovered(warning string) {
	if warning == "" {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: %s\n", warning)
}

// confirm asks the user a yes/no question on stdout and reads the answer
// from stdin. Only 'y' or 'Y' confirms.
func confirm(prompt string) bool {
	_, _ = fmt.Fprint(deps.Stdout, prompt+" [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
