package domain

import (
	"fmt"
	"time"
)

// Level is the severity of a report log line.
type Level string

const (
	// LevelInfo marks routine progress lines.
	LevelInfo Level = "INFO"
	// LevelWarn marks recorded task failures; the run itself continues.
	LevelWarn Level = "WARN"
	// LevelError marks faults of the run itself.
	LevelError Level = "ERROR"
)

// LogEntry is one timestamped, append-only report line.
type LogEntry struct {
	Time    time.Time
	Level   Level
	PID     int
	Message string
}

// Line renders the entry as a single report line.
func (e LogEntry) Line() string {
	return fmt.Sprintf("%s %s [%d] %s", e.Time.Format(time.RFC3339), e.Level, e.PID, e.Message)
}

// SummaryEntry is the one-line summary recorded for each completed task,
// regardless of outcome kind. Ordering equals execution order.
type SummaryEntry struct {
	Time    time.Time
	Message string
}

// Line renders the entry as a single report line.
func (e SummaryEntry) Line() string {
	return fmt.Sprintf("%s %s", e.Time.Format(time.RFC3339), e.Message)
}

// RunReport aggregates every log and summary entry of one invocation.
//
// It is an explicit accumulator owned by the pipeline, never a package-level
// singleton, so independent pipelines can run in one process.
type RunReport struct {
	// Path is the date-stamped report destination, fixed for the run.
	Path string

	Logs      []LogEntry
	Summaries []SummaryEntry
	Outcomes  []Outcome
}

// AddLog appends a log entry in creation order.
func (r *RunReport) AddLog(e LogEntry) {
	r.Logs = append(r.Logs, e)
}

// AddResult appends the summary entry and outcome of one completed task.
func (r *RunReport) AddResult(e SummaryEntry, o Outcome) {
	r.Summaries = append(r.Summaries, e)
	r.Outcomes = append(r.Outcomes, o)
}

// Failed reports how many recorded outcomes are failures.
func (r *RunReport) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StatusFailure {
			n++
		}
	}
	return n
}
