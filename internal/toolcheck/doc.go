// SPDX-License-Identifier: MPL-2.0

// Package toolcheck verifies that required external executables are
// installed and meet a minimum version before a pipeline shells out to them.
//
// Presence and version verification are independent operations. Presence is
// a plain exit-status test on a caller-supplied probe command. Version
// verification runs a probe command (by default `<tool> --version 2>&1`),
// extracts a version token from the first line of its output, and compares
// it against the configured minimum.
//
// A missing or outdated tool is a hard stop for the pipeline that asked for
// the check: failures are returned as typed errors and never retried.
package toolcheck
