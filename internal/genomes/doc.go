// SPDX-License-Identifier: MPL-2.0

// Package genomes resolves a user's genome-input specification into a
// single canonical, ordered list of genome FASTA file paths.
//
// A Specification is a sum type with exactly one populated case: an
// explicit file list, a directory to scan with an extension filter, or a
// list-file naming one path per line. Resolution is pure read-only I/O and
// either returns a concrete list or a typed failure, never a partial list
// with silently missing entries.
//
// The package classifies paths by extension only; it neither parses FASTA
// nor checks that resolved paths exist (downstream I/O does that).
package genomes
