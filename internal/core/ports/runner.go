// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
)

// CommandRunner executes external commands with uniform capture semantics.
// It is the single point every task body shells out through, which keeps
// capture behavior consistent and allows test doubles with scripted results.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command and collects its exit code and output.
	// A non-zero exit code is returned as data in the result, never as an
	// error; the error return covers cannot-start conditions only
	// (binary missing, fork failure).
	Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error)

	// LookPath reports whether the named tool is available on this host.
	// Task preconditions use it to skip work for absent optional tools.
	LookPath(name string) bool
}
