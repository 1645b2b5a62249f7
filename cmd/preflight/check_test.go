// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newTestCommand returns a throwaway cobra command with captured output.
func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	c := &cobra.Command{}
	c.SetContext(context.Background())
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	return c, &stdout, &stderr
}

// withCheckFlags sets the check command's flag globals for one test.
func withCheckFlags(t *testing.T, manifest, runner string) {
	t.Helper()
	prevManifest, prevRunner := manifestPath, runnerOverride
	manifestPath, runnerOverride = manifest, runner
	t.Cleanup(func() {
		manifestPath, runnerOverride = prevManifest, prevRunner
	})
}

func TestRunCheck(t *testing.T) {
	// Not parallel: the check command reads package-level flag state.

	t.Run("all requirements satisfied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preflight.toml")
		content := `
[[tools]]
name = "sometool"
min_version = "1.0"
presence_command = "true"
version_command = "echo sometool 1.2.3"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
		withCheckFlags(t, path, "virtual")

		c, stdout, _ := newTestCommand()
		if err := runCheck(c, nil); err != nil {
			t.Fatalf("runCheck failed: %v", err)
		}
		if !strings.Contains(stdout.String(), "sometool") {
			t.Errorf("expected report to mention sometool, got %q", stdout.String())
		}
	})

	t.Run("version too old fails with exit code 1", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preflight.toml")
		content := `
[[tools]]
name = "sometool"
min_version = "2.0"
presence_command = "true"
version_command = "echo sometool 1.2.3"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
		withCheckFlags(t, path, "virtual")

		c, _, stderr := newTestCommand()
		err := runCheck(c, nil)
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != 1 {
			t.Fatalf("expected ExitError with code 1, got %v", err)
		}
		if !strings.Contains(stderr.String(), "too old") {
			t.Errorf("expected too-old diagnostic, got %q", stderr.String())
		}
	})

	t.Run("missing manifest fails", func(t *testing.T) {
		withCheckFlags(t, filepath.Join(t.TempDir(), "absent.toml"), "virtual")

		c, _, _ := newTestCommand()
		err := runCheck(c, nil)
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected ExitError, got %v", err)
		}
	})

	t.Run("missing tool surfaces probe stderr", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preflight.toml")
		content := `
[[tools]]
name = "ghosttool"
min_version = "1.0"
presence_command = "echo nowhere to be found 1>&2; false"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
		withCheckFlags(t, path, "virtual")

		c, _, stderr := newTestCommand()
		err := runCheck(c, nil)
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected ExitError, got %v", err)
		}
		if !strings.Contains(stderr.String(), "nowhere to be found") {
			t.Errorf("expected probe stderr in diagnostics, got %q", stderr.String())
		}
	})
}
