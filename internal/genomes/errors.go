// SPDX-License-Identifier: MPL-2.0

package genomes

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpecification is returned when none of the three input cases is
	// supplied.
	ErrNoSpecification = errors.New("no genome specification provided")
	// ErrEmptyDirectory is the sentinel error wrapped by EmptyDirectoryError.
	ErrEmptyDirectory = errors.New("no genomes found in directory")
	// ErrListFileUnreadable is the sentinel error wrapped by ListFileError.
	ErrListFileUnreadable = errors.New("genome list file unreadable")
)

// EmptyDirectoryError reports that a directory scan matched zero files and
// the caller required at least one.
type EmptyDirectoryError struct {
	// Path is the scanned directory.
	Path string
	// Extension is the (normalized) extension that matched nothing.
	Extension string
}

// Error implements the error interface.
func (e *EmptyDirectoryError) Error() string {
	return fmt.Sprintf("found 0 genomes with extension %q in directory %s, cannot continue", e.Extension, e.Path)
}

// Unwrap returns the sentinel for errors.Is chains.
func (e *EmptyDirectoryError) Unwrap() error { return ErrEmptyDirectory }

// ListFileError reports that a list-file was missing, unopenable, or failed
// partway through reading. No partial results accompany it.
type ListFileError struct {
	// Path is the list-file path.
	Path string
	// Line is the 1-based line number at which reading failed, or 0 when
	// the file could not be opened at all.
	Line int
	// Cause is the underlying I/O error.
	Cause error
}

// Error implements the error interface.
func (e *ListFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to read genome list file %s at line %d: %v", e.Path, e.Line, e.Cause)
	}
	return fmt.Sprintf("failed to open genome list file %s: %v", e.Path, e.Cause)
}

// Unwrap returns the sentinel for errors.Is chains.
func (e *ListFileError) Unwrap() error { return ErrListFileUnreadable }
