// Package pipeline implements the sequential maintenance pipeline.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// TaskRunner executes one task, absorbing every failure mode into an
// Outcome. One task's crash never stops the pipeline: a panic in a task
// body is caught here and downgraded to a Failure outcome.
type TaskRunner struct {
	sink   ports.ReportSink
	logger ports.Logger
	now    func() time.Time
	pid    int
}

// NewTaskRunner creates a TaskRunner writing through the given sink.
func NewTaskRunner(sink ports.ReportSink, logger ports.Logger) *TaskRunner {
	return &TaskRunner{
		sink:   sink,
		logger: logger,
		now:    time.Now,
		pid:    os.Getpid(),
	}
}

// WithClock overrides the runner's time source. Used for testing.
func (r *TaskRunner) WithClock(now func() time.Time) *TaskRunner {
	r.now = now
	return r
}

// Execute runs one task and records exactly one log entry and one summary
// entry for it, regardless of outcome kind. Skipped is a first-class
// result and takes the same reporting path as success and failure.
func (r *TaskRunner) Execute(ctx context.Context, task domain.Task, rc *domain.RunContext, report *domain.RunReport) domain.Outcome {
	outcome := r.perform(ctx, task, rc)
	done := r.now()

	level := domain.LevelInfo
	if outcome.Status == domain.StatusFailure {
		level = domain.LevelWarn
	}

	entry := domain.LogEntry{
		Time:    done,
		Level:   level,
		PID:     r.pid,
		Message: fmt.Sprintf("task %s: %s: %s", task.Name, outcome.Status, outcome.Detail),
	}
	if err := r.sink.Append(entry); err != nil {
		// The run outlives a report write failure; the operator still
		// sees it on stderr.
		r.logger.Error(err)
	}
	report.AddLog(entry)

	summary := domain.SummaryEntry{
		Time:    done,
		Message: fmt.Sprintf("%s %s: %s", outcome.Marker(), task.Name, outcome.Detail),
	}
	report.AddResult(summary, outcome)

	return outcome
}

// perform evaluates the precondition and invokes the body. Any panic from
// the body's own logic is converted into a Failure outcome here so it
// cannot escape and abort the pipeline loop.
func (r *TaskRunner) perform(ctx context.Context, task domain.Task, rc *domain.RunContext) (outcome domain.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = domain.Failure(fmt.Sprintf("unexpected fault: %v", rec))
		}
	}()

	if !task.Applies(rc) {
		reason := task.SkipReason
		if reason == "" {
			reason = "precondition not met"
		}
		return domain.Skipped(reason)
	}

	return task.Body(ctx, rc)
}
