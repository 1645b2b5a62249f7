// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogging installs the process-wide slog logger. Called once at
// process start; the core packages only emit events through the injected
// slog sink and never touch logging state themselves.
func setupLogging(verbose, quiet bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(logger))
}
