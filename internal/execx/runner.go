// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"context"
	"fmt"
)

// Runner mode constants selecting how probe commands are interpreted.
const (
	// ModeBash runs commands through `bash -c` on the host.
	ModeBash Mode = "bash"
	// ModeVirtual runs commands with the embedded mvdan/sh interpreter.
	ModeVirtual Mode = "virtual"
)

type (
	// Mode identifies a Runner implementation.
	Mode string

	// Runner executes a single shell command string and captures its output.
	// Implementations must capture stdout and stderr separately and must
	// release all spawned-process resources before returning, on every path.
	Runner interface {
		// RunCapture executes command and blocks until it finishes. A non-zero
		// exit status is reported through Result.ExitCode, not through the
		// error return; the error return is reserved for environment failures
		// (shell missing, command string unparseable, process not startable).
		RunCapture(ctx context.Context, command string) (*Result, error)
	}
)

// IsValid reports whether the mode is a recognized Runner mode.
func (m Mode) IsValid() bool {
	return m == ModeBash || m == ModeVirtual
}

// NewRunner returns the Runner for the given mode.
func NewRunner(mode Mode) (Runner, error) {
	switch mode {
	case ModeBash:
		return NewBashRunner(), nil
	case ModeVirtual:
		return NewVirtualRunner(), nil
	default:
		return nil, fmt.Errorf("unknown runner mode %q", string(mode))
	}
}
