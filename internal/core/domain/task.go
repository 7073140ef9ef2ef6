package domain

import "context"

// Task is one independently reportable unit of maintenance work.
//
// Tasks are immutable once registered. The registration order of the task
// list is a contract of the system: package lists are refreshed before the
// upgrade, kernels are purged only after the package state is consistent.
type Task struct {
	// Name identifies the task in log and summary lines.
	Name string

	// Precondition reports whether the task applies to this run.
	// A nil Precondition means the task always applies. When it returns
	// false the body is never invoked and the task is recorded as skipped.
	Precondition func(rc *RunContext) bool

	// SkipReason is the reason recorded when Precondition returns false.
	SkipReason string

	// Body performs the work and classifies its own result. External
	// command failures are ordinary Failure outcomes, never errors.
	Body func(ctx context.Context, rc *RunContext) Outcome
}

// Applies evaluates the task precondition against the run context.
func (t Task) Applies(rc *RunContext) bool {
	if t.Precondition == nil {
		return true
	}
	return t.Precondition(rc)
}
