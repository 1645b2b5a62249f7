// SPDX-License-Identifier: MPL-2.0

package genomes

import "strings"

// DefaultExtension is the file extension used for directory scans when the
// caller does not configure one.
const DefaultExtension = "fna"

type (
	// Specification describes which genome files to process. Exactly one of
	// the three cases must be populated; build values through the From*
	// constructors so mutual exclusivity is established once at the boundary
	// instead of re-checked ad hoc.
	Specification struct {
		// Files is the explicit file list case. Order-preserving, may
		// contain duplicates; this layer does not deduplicate.
		Files []string
		// Directory is the directory-scan case.
		Directory *DirectorySpec
		// ListFile is the list-file case.
		ListFile *ListFileSpec
	}

	// DirectorySpec names a directory to scan (non-recursively) plus the
	// file extension entries must carry to be included.
	DirectorySpec struct {
		// Path is the directory to scan.
		Path string
		// Extension is the required extension. A single leading dot is
		// stripped before comparison, so "fna" and ".fna" behave
		// identically.
		Extension string
	}

	// ListFileSpec names a text file whose lines are genome file paths.
	ListFileSpec struct {
		// Path is the list-file path.
		Path string
	}
)

// FromFiles builds the explicit-list case. A nil slice is normalized to an
// empty list so that an explicitly empty selection stays the explicit-list
// case instead of decaying into the no-specification error.
func FromFiles(paths []string) Specification {
	if paths == nil {
		paths = []string{}
	}
	return Specification{Files: paths}
}

// FromDirectory builds the directory-scan case. An empty extension falls
// back to DefaultExtension.
func FromDirectory(path, extension string) Specification {
	if extension == "" {
		extension = DefaultExtension
	}
	return Specification{Directory: &DirectorySpec{Path: path, Extension: extension}}
}

// FromListFile builds the list-file case.
func FromListFile(path string) Specification {
	return Specification{ListFile: &ListFileSpec{Path: path}}
}

// IsZero reports whether no case is populated.
func (s Specification) IsZero() bool {
	return s.Files == nil && s.Directory == nil && s.ListFile == nil
}

// normalizedExtension returns the configured extension with a single
// leading dot stripped.
func (d *DirectorySpec) normalizedExtension() string {
	return strings.TrimPrefix(d.Extension, ".")
}
