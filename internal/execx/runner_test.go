// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"context"
	"strings"
	"testing"
)

func TestModeIsValid(t *testing.T) {
	t.Parallel()

	if !ModeBash.IsValid() {
		t.Error("expected ModeBash to be valid")
	}
	if !ModeVirtual.IsValid() {
		t.Error("expected ModeVirtual to be valid")
	}
	if Mode("powershell").IsValid() {
		t.Error("expected unknown mode to be invalid")
	}
}

func TestNewRunner(t *testing.T) {
	t.Parallel()

	if _, err := NewRunner(ModeBash); err != nil {
		t.Errorf("NewRunner(ModeBash) failed: %v", err)
	}
	if _, err := NewRunner(ModeVirtual); err != nil {
		t.Errorf("NewRunner(ModeVirtual) failed: %v", err)
	}
	if _, err := NewRunner(Mode("cmd.exe")); err == nil {
		t.Error("expected error for unknown mode")
	}
}

// Both runners must agree on the capture contract, so exercise them through
// the same table.
func TestRunCapture(t *testing.T) {
	t.Parallel()

	runners := map[string]Runner{
		"bash":    NewBashRunner(),
		"virtual": NewVirtualRunner(),
	}

	for name, runner := range runners {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("captures stdout", func(t *testing.T) {
				result, err := runner.RunCapture(context.Background(), "echo hello")
				if err != nil {
					t.Fatalf("RunCapture failed: %v", err)
				}
				if got := strings.TrimSpace(result.Output); got != "hello" {
					t.Errorf("expected stdout %q, got %q", "hello", got)
				}
				if result.ExitCode != 0 {
					t.Errorf("expected exit code 0, got %d", result.ExitCode)
				}
				if !result.Success() {
					t.Error("expected Success() for exit code 0")
				}
			})

			t.Run("captures stderr separately", func(t *testing.T) {
				result, err := runner.RunCapture(context.Background(), "echo oops 1>&2")
				if err != nil {
					t.Fatalf("RunCapture failed: %v", err)
				}
				if got := strings.TrimSpace(result.ErrOutput); got != "oops" {
					t.Errorf("expected stderr %q, got %q", "oops", got)
				}
				if result.Output != "" {
					t.Errorf("expected empty stdout, got %q", result.Output)
				}
			})

			t.Run("redirection merges stderr into stdout", func(t *testing.T) {
				result, err := runner.RunCapture(context.Background(), "{ echo merged 1>&2; } 2>&1")
				if err != nil {
					t.Fatalf("RunCapture failed: %v", err)
				}
				if got := strings.TrimSpace(result.Output); got != "merged" {
					t.Errorf("expected merged stderr on stdout, got stdout %q stderr %q", result.Output, result.ErrOutput)
				}
			})

			t.Run("non-zero exit is a result, not an error", func(t *testing.T) {
				result, err := runner.RunCapture(context.Background(), "exit 3")
				if err != nil {
					t.Fatalf("RunCapture failed: %v", err)
				}
				if result.ExitCode != 3 {
					t.Errorf("expected exit code 3, got %d", result.ExitCode)
				}
				if result.Success() {
					t.Error("expected Success() to be false for exit code 3")
				}
			})
		})
	}
}

func TestBashRunnerMissingShell(t *testing.T) {
	t.Parallel()

	runner := &BashRunner{Shell: "definitely-not-a-shell-binary"}
	if _, err := runner.RunCapture(context.Background(), "true"); err == nil {
		t.Error("expected environment error for missing shell")
	}
}

func TestVirtualRunnerSyntaxError(t *testing.T) {
	t.Parallel()

	runner := NewVirtualRunner()
	if _, err := runner.RunCapture(context.Background(), "if then fi ((("); err == nil {
		t.Error("expected parse error for malformed command")
	}
}
