// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for preflight.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"preflight/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose raises log verbosity to debug level
	verbose bool
	// quiet lowers log verbosity to error level
	quiet bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded application configuration, populated before any
	// subcommand runs.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "preflight",
		Short: "Precondition checks for genomics pipelines",
		Long: TitleStyle.Render("preflight") + SubtitleStyle.Render(" - precondition checks for genomics pipelines") + `

preflight verifies, before an expensive pipeline starts, that the external
tools the pipeline shells out to are installed and recent enough, and
resolves the genome FASTA inputs into a single worklist.

` + SubtitleStyle.Render("Examples:") + `
  preflight check                               Verify tools from preflight.toml
  preflight check --manifest mags.toml          Verify tools from another manifest
  preflight genomes -f a.fna -f b.fna           Resolve an explicit file list
  preflight genomes -d genomes/ -x fna          Resolve a directory scan
  preflight genomes -l genomes.txt              Resolve a list-file`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only show errors")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/preflight/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(genomesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// appConfig returns the loaded configuration, falling back to built-in
// defaults when a handler runs outside the normal cobra initialization
// path (direct RunE invocation in tests).
func appConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return config.Defaults()
}

// initRootConfig loads configuration and installs the process-wide logger.
func initRootConfig() {
	loaded, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		loaded = config.Defaults()
	}

	// CLI flags win over config file values.
	if verbose {
		loaded.Verbose = true
	}
	if quiet {
		loaded.Quiet = true
	}
	cfg = loaded

	setupLogging(cfg.Verbose, cfg.Quiet)
}
