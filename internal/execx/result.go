// SPDX-License-Identifier: MPL-2.0

package execx

// Result holds the captured outcome of one command execution.
type Result struct {
	// Output is the captured standard output.
	Output string
	// ErrOutput is the captured standard error.
	ErrOutput string
	// ExitCode is the command's exit status.
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}
