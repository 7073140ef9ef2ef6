// Package app implements the application layer for upkeep.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/upkeep/internal/engine/pipeline"
	"go.trai.ch/upkeep/internal/tasks"
	"go.trai.ch/zerr"
)

// ReportPrefix is the fixed report file name prefix; the current date is
// appended so each day's runs share one append-only file.
const ReportPrefix = "upkeep-report"

// App represents the main application logic.
type App struct {
	guard    ports.PrivilegeGuard
	loader   ports.PolicyLoader
	detector ports.PlatformDetector
	runner   ports.CommandRunner
	logger   ports.Logger
	newSink  ports.SinkFactory
	now      func() time.Time
}

// New creates a new App instance.
func New(
	guard ports.PrivilegeGuard,
	loader ports.PolicyLoader,
	detector ports.PlatformDetector,
	runner ports.CommandRunner,
	log ports.Logger,
	newSink ports.SinkFactory,
) *App {
	return &App{
		guard:    guard,
		loader:   loader,
		detector: detector,
		runner:   runner,
		logger:   log,
		newSink:  newSink,
		now:      time.Now,
	}
}

// WithClock overrides the App's time source. Used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath string
}

// Run performs one maintenance run.
//
// The privilege guard is evaluated exactly once, before anything else; its
// failure is the only condition that halts the run. Individual task
// outcomes never surface as an error here; they are recorded in the
// report, and the process exits zero once the pipeline completed.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if err := a.guard.Check(); err != nil {
		// No report content is written for a privilege failure; the
		// destination may not even be creatable.
		return err
	}

	policy, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load policy")
	}

	reportPath := filepath.Join(policy.ReportDir,
		fmt.Sprintf("%s-%s.log", ReportPrefix, a.now().Format("20060102")))

	sink, err := a.newSink(reportPath)
	if err != nil {
		return zerr.Wrap(err, "failed to open report destination")
	}
	defer func() {
		_ = sink.Close()
	}()

	rc := &domain.RunContext{
		Policy:     policy,
		ReportPath: reportPath,
	}

	report := pipeline.New(sink, a.logger).Run(ctx, tasks.Registry(a.runner, a.detector), rc)

	if failed := report.Failed(); failed > 0 {
		a.logger.Warn(fmt.Sprintf("%d task(s) failed, see %s", failed, report.Path))
	}
	return nil
}
