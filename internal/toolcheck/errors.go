// SPDX-License-Identifier: MPL-2.0

package toolcheck

import (
	"errors"
	"fmt"
)

var (
	// ErrToolNotPresent is the sentinel error wrapped by NotPresentError.
	ErrToolNotPresent = errors.New("tool not present")
	// ErrVersionProbeFailed is the sentinel error wrapped by ProbeFailedError.
	ErrVersionProbeFailed = errors.New("version probe failed")
	// ErrVersionUnparseable is the sentinel error wrapped by UnparseableError.
	ErrVersionUnparseable = errors.New("version unparseable")
	// ErrVersionTooOld is the sentinel error wrapped by TooOldError.
	ErrVersionTooOld = errors.New("version too old")
)

// NotPresentError reports that a tool's presence-test command exited
// non-zero. Stderr carries the probe's captured standard error so callers
// can print actionable diagnostics.
type NotPresentError struct {
	// Tool is the executable name.
	Tool string
	// Command is the presence-test command that failed.
	Command string
	// Stderr is the captured standard error of the failed probe.
	Stderr string
}

// Error implements the error interface.
func (e *NotPresentError) Error() string {
	return fmt.Sprintf("could not find an available %s executable: testing for presence with `%s` failed", e.Tool, e.Command)
}

// Unwrap returns the sentinel for errors.Is chains.
func (e *NotPresentError) Unwrap() error { return ErrToolNotPresent }

// ProbeFailedError reports that a version-probe command exited non-zero and
// the requirement did not tolerate that.
type ProbeFailedError struct {
	// Tool is the executable name.
	Tool string
	// Command is the version-probe command that failed.
	Command string
	// Stderr is the captured standard error of the failed probe.
	Stderr string
}

// Error implements the error interface.
func (e *ProbeFailedError) Error() string {
	return fmt.Sprintf("could not find an available %s executable: finding version with `%s` failed", e.Tool, e.Command)
}

// Unwrap returns the sentinel for errors.Is chains.
func (e *ProbeFailedError) Unwrap() error { return ErrVersionProbeFailed }

// UnparseableError reports that a version probe produced output with no
// extractable version token.
type UnparseableError struct {
	// Tool is the executable name.
	Tool string
	// Output is the probe output the token could not be extracted from.
	Output string
	// Cause is the underlying parse error, if any.
	Cause error
}

// Error implements the error interface.
func (e *UnparseableError) Error() string {
	return fmt.Sprintf("unable to parse version number %q from executable %s", e.Output, e.Tool)
}

// Unwrap returns the sentinel for errors.Is chains.
func (e *UnparseableError) Unwrap() error { return ErrVersionUnparseable }

// TooOldError reports that a tool's self-reported version compares less
// than the required minimum. Both version strings are carried for display.
type TooOldError struct {
	// Tool is the executable name.
	Tool string
	// Found is the version reported by the installed tool.
	Found string
	// Minimum is the required minimum version.
	Minimum string
}

// Error implements the error interface.
func (e *TooOldError) Error() string {
	return fmt.Sprintf("the available version of %s is too old (found version %s, required is %s)", e.Tool, e.Found, e.Minimum)
}

// Unwrap returns the sentinel for errors.Is chains.
func (e *TooOldError) Unwrap() error { return ErrVersionTooOld }
