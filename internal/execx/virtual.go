// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner executes command strings with the embedded mvdan/sh
// interpreter. Shell redirections such as `2>&1` work without any shell
// binary on the host.
type VirtualRunner struct{}

// NewVirtualRunner creates a virtual-shell Runner.
func NewVirtualRunner() *VirtualRunner {
	return &VirtualRunner{}
}

// RunCapture parses and runs command in-process with stdout and stderr
// captured. A syntax error in the command string is an environment failure.
func (r *VirtualRunner) RunCapture(ctx context.Context, command string) (*Result, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "probe")
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, &stdout, &stderr),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	result := &Result{}
	err = runner.Run(ctx, prog)
	result.Output = stdout.String()
	result.ErrOutput = stderr.String()

	if err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			result.ExitCode = int(exitStatus)
			return result, nil
		}
		return nil, fmt.Errorf("command execution failed: %w", err)
	}

	return result, nil
}
