// SPDX-License-Identifier: MPL-2.0

package genomes

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Resolver turns genome specifications into path lists. Resolution only
// reads the filesystem; a Resolver carries no state beyond its log sink and
// may be shared.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil logger falls back to slog.Default().
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Resolve turns spec into an ordered list of genome file paths.
//
// The explicit-list case is returned verbatim. The directory case includes
// each direct entry whose filename extension equals the configured one
// (case-sensitive, after dot-stripping); entry order follows the underlying
// directory listing and is platform dependent, so tests should compare
// sets, not sequences. The list-file case yields one entry per line,
// trimmed of surrounding whitespace; blank lines are kept as empty-string
// entries.
//
// When failOnEmpty is false an empty directory scan resolves to an empty
// list instead of an error.
func (r *Resolver) Resolve(spec Specification, failOnEmpty bool) ([]string, error) {
	switch {
	case spec.Files != nil:
		return spec.Files, nil
	case spec.Directory != nil:
		return r.resolveDirectory(spec.Directory, failOnEmpty)
	case spec.ListFile != nil:
		return r.resolveListFile(spec.ListFile)
	default:
		return nil, ErrNoSpecification
	}
}

// resolveDirectory scans the direct entries of the configured directory.
func (r *Resolver) resolveDirectory(dir *DirectorySpec, failOnEmpty bool) ([]string, error) {
	entries, err := os.ReadDir(dir.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genome directory %s: %w", dir.Path, err)
	}

	extension := dir.normalizedExtension()
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir.Path, entry.Name())
		ext := filepath.Ext(entry.Name())
		// A bare dotfile such as ".fna" has no stem, hence no extension;
		// filepath.Ext would report the whole name as one.
		if ext == entry.Name() {
			ext = ""
		}
		switch {
		case ext == "":
			r.logger.Info("not using directory entry as a genome FASTA file",
				"path", path, "reason", "no file extension")
		case strings.TrimPrefix(ext, ".") != extension:
			r.logger.Info("not using directory entry as a genome FASTA file",
				"path", path, "reason", "extension mismatch", "extension", extension)
		default:
			paths = append(paths, path)
		}
	}

	if len(paths) == 0 && failOnEmpty {
		return nil, &EmptyDirectoryError{Path: dir.Path, Extension: extension}
	}
	return paths, nil
}

// resolveListFile reads one genome path per line, preserving line order.
// Blank lines become empty-string entries rather than being dropped.
func (r *Resolver) resolveListFile(lf *ListFileSpec) ([]string, error) {
	f, err := os.Open(lf.Path)
	if err != nil {
		return nil, &ListFileError{Path: lf.Path, Cause: err}
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		paths = append(paths, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, &ListFileError{Path: lf.Path, Line: line + 1, Cause: err}
	}

	return paths, nil
}
