// SPDX-License-Identifier: MPL-2.0

package toolcheck

import "fmt"

// Requirement describes one external tool a pipeline depends on. It is an
// immutable value, constructed once per check.
type Requirement struct {
	// Name is the executable name (e.g. "samtools").
	Name string
	// PresenceCommand is the command run to test that the tool can be
	// invoked at all. Empty means `command -v <name>`.
	PresenceCommand string
	// MinVersion is the minimum acceptable version. It comes from static
	// configuration, so a malformed value is a programming error, not a
	// runtime condition.
	MinVersion string
	// VersionCommand overrides the default version probe when set.
	VersionCommand string
	// AllowNonzeroExit tolerates a non-zero exit status from the version
	// probe. Some tools exit non-zero from `--version`.
	AllowNonzeroExit bool
}

// presenceCommand returns the probe used to test the tool's presence.
func (r Requirement) presenceCommand() string {
	if r.PresenceCommand != "" {
		return r.PresenceCommand
	}
	return fmt.Sprintf("command -v %s", r.Name)
}

// versionCommand returns the probe used to obtain the tool's version.
// Stderr is merged into stdout by convention since many tools print their
// version to stderr.
func (r Requirement) versionCommand() string {
	if r.VersionCommand != "" {
		return r.VersionCommand
	}
	return fmt.Sprintf("%s --version 2>&1", r.Name)
}
