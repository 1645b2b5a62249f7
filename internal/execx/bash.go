// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// BashRunner executes command strings through `bash -c` on the host.
type BashRunner struct {
	// Shell overrides the shell binary (default "bash").
	Shell string
}

// NewBashRunner creates a bash-backed Runner.
func NewBashRunner() *BashRunner {
	return &BashRunner{}
}

// RunCapture runs command through the shell with stdout and stderr captured
// on pipes. A missing shell is an environment failure, not a command result.
func (r *BashRunner) RunCapture(ctx context.Context, command string) (*Result, error) {
	shell := r.Shell
	if shell == "" {
		shell = "bash"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Output:    stdout.String(),
		ErrOutput: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to execute %s: %w", shell, err)
	}

	return result, nil
}
