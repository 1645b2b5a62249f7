// SPDX-License-Identifier: MPL-2.0

package toolcheck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"preflight/internal/execx"

	"github.com/hashicorp/go-version"
)

// Checker verifies external tool requirements through an injected Runner.
// Checks share no mutable state: each call is independent and idempotent
// given a stable host environment, so a Checker may be used concurrently.
type Checker struct {
	runner execx.Runner
	logger *slog.Logger
}

// NewChecker creates a Checker. A nil logger falls back to slog.Default().
func NewChecker(runner execx.Runner, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{runner: runner, logger: logger}
}

// CheckPresence verifies that the requirement's presence-test command
// succeeds. Success is defined solely by a zero exit status; stdout content
// is irrelevant. The probe is never retried.
func (c *Checker) CheckPresence(ctx context.Context, req Requirement) error {
	command := req.presenceCommand()
	c.logger.Debug("checking for tool", "tool", req.Name, "command", command)

	result, err := c.runner.RunCapture(ctx, command)
	if err != nil {
		return fmt.Errorf("presence check for %s: %w", req.Name, err)
	}
	if !result.Success() {
		c.logger.Error("tool not found", "tool", req.Name, "stderr", result.ErrOutput)
		return &NotPresentError{Tool: req.Name, Command: command, Stderr: result.ErrOutput}
	}

	return nil
}

// CheckVersion runs the requirement's version probe, extracts the version
// token from its output and compares it against the minimum. Found >=
// minimum is the passing condition.
//
// A malformed Requirement.MinVersion panics: the minimum originates from
// static configuration, so failing to parse it is a programming defect,
// not a runtime condition.
func (c *Checker) CheckVersion(ctx context.Context, req Requirement) error {
	minimum := version.Must(version.NewVersion(req.MinVersion))

	command := req.versionCommand()
	c.logger.Debug("probing tool version", "tool", req.Name, "command", command)

	result, err := c.runner.RunCapture(ctx, command)
	if err != nil {
		return fmt.Errorf("version probe for %s: %w", req.Name, err)
	}
	if !result.Success() && !req.AllowNonzeroExit {
		c.logger.Error("version probe failed", "tool", req.Name, "stderr", result.ErrOutput)
		return &ProbeFailedError{Tool: req.Name, Command: command, Stderr: result.ErrOutput}
	}

	token, err := extractVersionToken(result.Output)
	if err != nil {
		return &UnparseableError{Tool: req.Name, Output: strings.TrimSpace(result.Output), Cause: err}
	}

	found, err := version.NewVersion(token)
	if err != nil {
		return &UnparseableError{Tool: req.Name, Output: token, Cause: err}
	}

	c.logger.Info("found tool version", "tool", req.Name, "version", found.Original())
	if found.LessThan(minimum) {
		return &TooOldError{Tool: req.Name, Found: found.Original(), Minimum: req.MinVersion}
	}

	return nil
}

// Check verifies presence and then version for a single requirement.
func (c *Checker) Check(ctx context.Context, req Requirement) error {
	if err := c.CheckPresence(ctx, req); err != nil {
		return err
	}
	return c.CheckVersion(ctx, req)
}

// CheckAll verifies requirements sequentially and fails fast on the first
// failure. Callers wanting parallelism can fan out themselves; checks are
// independent.
func (c *Checker) CheckAll(ctx context.Context, reqs []Requirement) error {
	for _, req := range reqs {
		if err := c.Check(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// extractVersionToken pulls the version token out of raw probe output.
// The output is trimmed; a single leading 'v' is stripped (`v1.2.3` →
// `1.2.3`); only the first line is considered; the last space-delimited
// token of that line is the version (handles output like `tool version
// 1.2.3`).
func extractVersionToken(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "v")
	if trimmed == "" {
		return "", fmt.Errorf("probe output is empty")
	}

	line, _, _ := strings.Cut(trimmed, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("probe output has no first line")
	}

	token := line
	if idx := strings.LastIndex(line, " "); idx >= 0 {
		token = line[idx+1:]
	}
	if token == "" {
		return "", fmt.Errorf("probe output line %q has no version token", line)
	}

	return token, nil
}
