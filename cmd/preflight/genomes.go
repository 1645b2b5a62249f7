// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"preflight/internal/genomes"

	"github.com/spf13/cobra"
)

var (
	// genomeFiles is the --genome-fasta-files flag value.
	genomeFiles []string
	// genomeDir is the --genome-fasta-directory flag value.
	genomeDir string
	// genomeExt is the --genome-fasta-extension flag value.
	genomeExt string
	// genomeList is the --genome-fasta-list flag value.
	genomeList string
	// allowEmpty tolerates a directory scan matching zero genomes.
	allowEmpty bool

	genomesCmd = &cobra.Command{
		Use:   "genomes",
		Short: "Resolve genome FASTA inputs into a worklist",
		Long: `Resolve the genome input specification into a single ordered list of
FASTA file paths, printed one per line.

Exactly one input form must be given: an explicit file list, a directory
to scan (non-recursive, filtered by extension), or a list-file naming one
path per line.`,
		RunE: runGenomes,
	}
)

func init() {
	genomesCmd.Flags().StringSliceVarP(&genomeFiles, "genome-fasta-files", "f", nil, "explicit genome FASTA file paths")
	genomesCmd.Flags().StringVarP(&genomeDir, "genome-fasta-directory", "d", "", "directory to scan for genome FASTA files")
	genomesCmd.Flags().StringVarP(&genomeExt, "genome-fasta-extension", "x", "", "file extension for directory scans (default fna)")
	genomesCmd.Flags().StringVarP(&genomeList, "genome-fasta-list", "l", "", "text file naming one genome FASTA path per line")
	genomesCmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "do not fail when a directory scan matches zero genomes")

	// The three input forms are a sum type: exactly one case.
	genomesCmd.MarkFlagsMutuallyExclusive("genome-fasta-files", "genome-fasta-directory", "genome-fasta-list")
	genomesCmd.MarkFlagsOneRequired("genome-fasta-files", "genome-fasta-directory", "genome-fasta-list")
	genomesCmd.MarkFlagsMutuallyExclusive("genome-fasta-extension", "genome-fasta-files")
	genomesCmd.MarkFlagsMutuallyExclusive("genome-fasta-extension", "genome-fasta-list")
}

// buildSpecification converts the parsed flags into the specification sum
// type. Mutual exclusivity is already enforced at the flag boundary, so
// this is a straight mapping.
func buildSpecification() genomes.Specification {
	switch {
	case len(genomeFiles) > 0:
		return genomes.FromFiles(genomeFiles)
	case genomeDir != "":
		ext := genomeExt
		if ext == "" {
			ext = appConfig().GenomeExtension
		}
		return genomes.FromDirectory(genomeDir, ext)
	case genomeList != "":
		return genomes.FromListFile(genomeList)
	default:
		return genomes.Specification{}
	}
}

func runGenomes(c *cobra.Command, _ []string) error {
	resolver := genomes.NewResolver(nil)

	paths, err := resolver.Resolve(buildSpecification(), !allowEmpty)
	if err != nil {
		fmt.Fprintln(c.ErrOrStderr(), ErrorStyle.Render("✗ ")+err.Error())
		return &ExitError{Code: 1}
	}

	for _, path := range paths {
		fmt.Fprintln(c.OutOrStdout(), path)
	}
	return nil
}
