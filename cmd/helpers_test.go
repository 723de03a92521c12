package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// testNow is the fixed clock every command test runs under.
var testNow = time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC)

// testEnv wires the command deps to buffers and per-test temp paths.
type testEnv struct {
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
	exitCode   int
	exited     bool
	storePath  string
	configPath string
}

// setupTest replaces the global deps with test doubles and registers
// cleanup. The config path points at a file that does not exist, so
// commands run with default configuration unless a test writes one.
func setupTest(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		stdout:     &bytes.Buffer{},
		stderr:     &bytes.Buffer{},
		storePath:  filepath.Join(dir, "afibcare.json"),
		configPath: filepath.Join(dir, "config.toml"),
	}

	SetDeps(&Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  strings.NewReader(""),
		Exit: func(code int) {
			env.exitCode = code
			env.exited = true
		},
		StorePath:  func() (string, error) { return env.storePath, nil },
		ConfigPath: func() (string, error) { return env.configPath, nil },
		Now:        func() time.Time { return testNow },
	})
	t.Cleanup(ResetDeps)

	return env
}

// setStdin replaces the test stdin, for commands that prompt.
func (env *testEnv) setStdin(input string) {
	deps.Stdin = strings.NewReader(input)
}

// seedEntry writes an entry straight into the test store file.
func (env *testEnv) seedEntry(t *testing.T, e record.DailyEntry) {
	t.Helper()

	entries := store.Load(env.storePath)
	entries[e.Date] = e
	if err := store.Save(env.storePath, entries); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
}

// writeFile is a small shorthand for writing a test fixture file.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// newTestCommand builds a throwaway command with the given flags parsed,
// so flag state never leaks between tests.
func newTestCommand(t *testing.T, register func(*pflag.FlagSet), args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{}
	register(cmd.Flags())
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Failed to parse flags %v: %v", args, err)
	}
	return cmd
}
