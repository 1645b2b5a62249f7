// SPDX-License-Identifier: MPL-2.0

// Package manifest loads the tool-requirements manifest consumed by the
// check command. The manifest is a TOML file listing each external tool a
// pipeline shells out to, with its minimum version and optional probe
// overrides.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"preflight/internal/toolcheck"

	"github.com/hashicorp/go-version"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the manifest looked up in the working directory when
// no path is given.
const DefaultFileName = "preflight.toml"

var (
	// ErrNoTools is returned when a manifest declares no tools at all.
	ErrNoTools = errors.New("manifest declares no tools")
	// ErrInvalidTool is the sentinel error wrapped by InvalidToolError.
	ErrInvalidTool = errors.New("invalid tool entry")
)

type (
	// Manifest is the parsed requirements file.
	Manifest struct {
		// Tools are the external tool requirements, in declaration order.
		Tools []Tool `toml:"tools"`
	}

	// Tool is one `[[tools]]` entry.
	Tool struct {
		// Name is the executable name.
		Name string `toml:"name"`
		// MinVersion is the minimum acceptable version.
		MinVersion string `toml:"min_version"`
		// PresenceCommand overrides the default presence probe.
		PresenceCommand string `toml:"presence_command"`
		// VersionCommand overrides the default version probe.
		VersionCommand string `toml:"version_command"`
		// AllowNonzeroExit tolerates a non-zero version-probe exit.
		AllowNonzeroExit bool `toml:"allow_nonzero_exit"`
	}
)

// InvalidToolError reports a malformed `[[tools]]` entry.
type InvalidToolError struct {
	// Index is the zero-based position of the entry in the manifest.
	Index int
	// Name is the declared tool name, possibly empty.
	Name string
	// Reason describes what is wrong with the entry.
	Reason string
}

// Error implements the error interface.
func (e *InvalidToolError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("tools[%d]: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("tools[%d] (%s): %s", e.Index, e.Name, e.Reason)
}

// Unwrap returns the sentinel for errors.Is chains.
func (e *InvalidToolError) Unwrap() error { return ErrInvalidTool }

// Load reads and validates a manifest file. Validation happens once here so
// that a malformed min_version surfaces at load time as a user-facing error
// instead of panicking later inside the version check.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}

// Validate checks every tool entry.
func (m *Manifest) Validate() error {
	if len(m.Tools) == 0 {
		return ErrNoTools
	}
	for i, tool := range m.Tools {
		if tool.Name == "" {
			return &InvalidToolError{Index: i, Reason: "missing name"}
		}
		if tool.MinVersion == "" {
			return &InvalidToolError{Index: i, Name: tool.Name, Reason: "missing min_version"}
		}
		if _, err := version.NewVersion(tool.MinVersion); err != nil {
			return &InvalidToolError{Index: i, Name: tool.Name, Reason: fmt.Sprintf("malformed min_version %q", tool.MinVersion)}
		}
	}
	return nil
}

// Requirements converts the manifest into checker requirements, in
// declaration order.
func (m *Manifest) Requirements() []toolcheck.Requirement {
	reqs := make([]toolcheck.Requirement, 0, len(m.Tools))
	for _, tool := range m.Tools {
		reqs = append(reqs, toolcheck.Requirement{
			Name:             tool.Name,
			PresenceCommand:  tool.PresenceCommand,
			MinVersion:       tool.MinVersion,
			VersionCommand:   tool.VersionCommand,
			AllowNonzeroExit: tool.AllowNonzeroExit,
		})
	}
	return reqs
}
