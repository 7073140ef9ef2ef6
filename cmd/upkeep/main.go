// Package main is the entry point for the upkeep maintenance tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/upkeep/cmd/upkeep/commands"
	"go.trai.ch/upkeep/internal/app"
	"go.trai.ch/upkeep/internal/core/domain"
	_ "go.trai.ch/upkeep/internal/wiring"
)

// Exit codes. Privilege failure is distinguishable from every other
// failure; a completed pipeline always exits zero, whatever the
// individual task outcomes were.
const (
	exitOK        = 0
	exitError     = 1
	exitPrivilege = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitError
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			// The report destination may not be writable without
			// privileges, so this goes to stderr only.
			_, _ = fmt.Fprintf(stderr, "%+v\n", err)
			return exitPrivilege
		}
		components.Logger.Error(err)
		return exitError
	}
	return exitOK
}
