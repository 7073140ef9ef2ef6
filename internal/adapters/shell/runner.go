// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
//
// It is fire-and-collect: the command runs to completion, stdout and stderr
// are captured into buffers, and a non-zero exit status is returned as data
// in the result. An error is returned only when the command cannot be
// started at all.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command and collects its exit code and output.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // task-defined command

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := domain.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The command ran and reported failure. That is ordinary data
			// for the caller to classify, not an error.
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
	}

	r.logger.Info("command completed: " + strings.Join(cmd.Args, " "))
	return res, nil
}

// LookPath reports whether the named tool is available in PATH.
func (r *Runner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
