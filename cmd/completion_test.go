package cmd

import (
	"strings"
	"testing"
)

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			env := setupTest(t)

			generateCompletion(shell)

			if env.stdout.Len() == 0 {
				t.Errorf("Expected a %s completion script on stdout", shell)
			}
			if env.exited {
				t.Errorf("Expected no exit for %s, got code %d", shell, env.exitCode)
			}
		})
	}
}

func TestGenerateCompletion_BashMentionsProgram(t *testing.T) {
	env := setupTest(t)

	generateCompletion("bash")

	if !strings.Contains(env.stdout.String(), "afibcare") {
		t.Error("Expected the program name in the completion script")
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	env := setupTest(t)

	generateCompletion("tcsh")

	if !strings.Contains(env.stderr.String(), "unsupported shell") {
		t.Errorf("Expected unsupported-shell error, got: %s", env.stderr.String())
	}
	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
}
