package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// SummaryHeader is the title line of the final summary block.
const SummaryHeader = "==== Maintenance Summary ===="

// Pipeline drives the ordered task list strictly sequentially to
// completion, aggregating outcomes into a RunReport.
//
// The pipeline never aborts on a task outcome: partial failure is an
// expected steady state, surfaced only through the recorded report.
type Pipeline struct {
	runner *TaskRunner
	sink   ports.ReportSink
	logger ports.Logger
	now    func() time.Time
	pid    int
}

// New creates a Pipeline writing through the given sink.
func New(sink ports.ReportSink, logger ports.Logger) *Pipeline {
	return &Pipeline{
		runner: NewTaskRunner(sink, logger),
		sink:   sink,
		logger: logger,
		now:    time.Now,
		pid:    os.Getpid(),
	}
}

// WithClock overrides the pipeline's time source, including the embedded
// task runner's. Used for testing.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	p.runner.WithClock(now)
	return p
}

// Run executes every task in registration order and renders the final
// summary block. It returns the aggregated report; it never fails on
// individual task outcomes.
func (p *Pipeline) Run(ctx context.Context, tasks []domain.Task, rc *domain.RunContext) *domain.RunReport {
	report := &domain.RunReport{Path: rc.ReportPath}

	p.log(report, domain.LevelInfo, fmt.Sprintf("maintenance run started, %d tasks registered", len(tasks)))

	for _, task := range tasks {
		p.runner.Execute(ctx, task, rc, report)
	}

	p.renderSummary(report)

	p.log(report, domain.LevelInfo, fmt.Sprintf(
		"maintenance run complete: %d tasks, %d failed; report written to %s (trail digest %016x)",
		len(tasks), report.Failed(), p.sink.Path(), p.sink.Digest(),
	))

	return report
}

// renderSummary writes the bulleted summary block, one line per completed
// task in execution order, to the sink (and thereby the interactive stream).
func (p *Pipeline) renderSummary(report *domain.RunReport) {
	p.line("")
	p.line(SummaryHeader)
	for _, entry := range report.Summaries {
		p.line(" - " + entry.Message)
	}
	p.line("")
}

func (p *Pipeline) log(report *domain.RunReport, level domain.Level, msg string) {
	entry := domain.LogEntry{Time: p.now(), Level: level, PID: p.pid, Message: msg}
	if err := p.sink.Append(entry); err != nil {
		p.logger.Error(err)
	}
	report.AddLog(entry)
}

func (p *Pipeline) line(s string) {
	if err := p.sink.AppendLine(s); err != nil {
		p.logger.Error(err)
	}
}
