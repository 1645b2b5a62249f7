// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"preflight/internal/execx"
	"preflight/internal/manifest"
	"preflight/internal/toolcheck"

	"github.com/spf13/cobra"
)

var (
	// manifestPath is the --manifest flag value.
	manifestPath string
	// runnerOverride is the --runner flag value.
	runnerOverride string

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Verify that required external tools are installed and recent enough",
		Long: `Verify every external tool named in the requirements manifest, before any
genome I/O happens. Each tool is probed twice: once for presence (the probe
command must exit zero) and once for its version, which must compare
greater than or equal to the configured minimum.

The first failing tool aborts the check: a missing or outdated tool is a
hard stop for the pipeline behind it.`,
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "tool requirements manifest (default preflight.toml)")
	checkCmd.Flags().StringVar(&runnerOverride, "runner", "", "probe runner: bash or virtual")
}

func runCheck(c *cobra.Command, _ []string) error {
	path := manifestPath
	if path == "" {
		path = appConfig().Manifest
	}

	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintln(c.ErrOrStderr(), ErrorStyle.Render("✗ ")+err.Error())
		return &ExitError{Code: 1}
	}

	mode := appConfig().Runner
	if runnerOverride != "" {
		mode = execx.Mode(runnerOverride)
	}
	runner, err := execx.NewRunner(mode)
	if err != nil {
		return err
	}

	checker := toolcheck.NewChecker(runner, nil)
	for _, req := range m.Requirements() {
		if err := checker.Check(c.Context(), req); err != nil {
			fmt.Fprintln(c.ErrOrStderr(), ErrorStyle.Render("✗ ")+err.Error())
			printProbeStderr(c, err)
			return &ExitError{Code: 1}
		}
		fmt.Fprintf(c.OutOrStdout(), "%s %s >= %s\n", SuccessStyle.Render("✓"), req.Name, req.MinVersion)
	}

	fmt.Fprintln(c.OutOrStdout(), SuccessStyle.Render("All tool requirements satisfied."))
	return nil
}

// printProbeStderr surfaces the probe's captured stderr, when the failure
// carries one, so the user sees the tool's own diagnostics.
func printProbeStderr(c *cobra.Command, err error) {
	var stderr string
	var notPresent *toolcheck.NotPresentError
	var probeFailed *toolcheck.ProbeFailedError
	switch {
	case errors.As(err, &notPresent):
		stderr = notPresent.Stderr
	case errors.As(err, &probeFailed):
		stderr = probeFailed.Stderr
	}
	if stderr != "" {
		fmt.Fprintln(c.ErrOrStderr(), SubtitleStyle.Render("The probe's STDERR was:"))
		fmt.Fprintln(c.ErrOrStderr(), stderr)
	}
}
