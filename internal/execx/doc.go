// SPDX-License-Identifier: MPL-2.0

// Package execx provides captured-output command execution for precondition
// probes.
//
// Two Runner implementations are available:
//   - bash: executes the command string through `bash -c` on the host
//   - virtual: executes the command string with an embedded shell
//     interpreter (mvdan/sh), requiring no shell on the host
//
// Both capture stdout and stderr separately on pipes; nothing is inherited
// from the parent's terminal. Execution is synchronous and has no internal
// timeout: callers wanting bounded latency pass a context with a deadline.
package execx
