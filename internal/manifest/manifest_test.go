// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeManifest writes content to a temp manifest file and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, `
[[tools]]
name = "samtools"
min_version = "1.9"

[[tools]]
name = "checkm"
min_version = "1.1.3"
version_command = "checkm 2>&1 | head -1"
allow_nonzero_exit = true
`)

		m, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		reqs := m.Requirements()
		if len(reqs) != 2 {
			t.Fatalf("expected 2 requirements, got %d", len(reqs))
		}
		if reqs[0].Name != "samtools" || reqs[0].MinVersion != "1.9" {
			t.Errorf("unexpected first requirement: %+v", reqs[0])
		}
		if !reqs[1].AllowNonzeroExit {
			t.Error("expected allow_nonzero_exit to carry through")
		}
		if reqs[1].VersionCommand != "checkm 2>&1 | head -1" {
			t.Errorf("unexpected version command: %q", reqs[1].VersionCommand)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("expected error for missing manifest")
		}
	})

	t.Run("malformed TOML", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "[[tools]\nname =")
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("no tools", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "# empty\n")
		if _, err := Load(path); !errors.Is(err, ErrNoTools) {
			t.Errorf("expected ErrNoTools, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "[[tools]]\nmin_version = \"1.0\"\n")
		_, err := Load(path)
		if !errors.Is(err, ErrInvalidTool) {
			t.Fatalf("expected ErrInvalidTool, got %v", err)
		}
	})

	t.Run("malformed min_version rejected at load time", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "[[tools]]\nname = \"samtools\"\nmin_version = \"latest\"\n")
		_, err := Load(path)
		var invalid *InvalidToolError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected *InvalidToolError, got %v", err)
		}
		if invalid.Name != "samtools" {
			t.Errorf("expected tool name in error, got %q", invalid.Name)
		}
	})
}
