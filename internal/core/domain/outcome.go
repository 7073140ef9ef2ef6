package domain

// Status is the tri-state result kind of a task execution.
type Status string

const (
	// StatusSuccess indicates the task body completed and did its work
	// (including "nothing to do", which is success with a descriptive detail).
	StatusSuccess Status = "success"
	// StatusFailure indicates the task body completed but the work failed.
	StatusFailure Status = "failure"
	// StatusSkipped indicates the task precondition was unmet and the body never ran.
	StatusSkipped Status = "skipped"
)

// Outcome is the immutable result of running one task.
// Every task execution produces exactly one Outcome.
type Outcome struct {
	Status Status
	Detail string
}

// Success returns a success Outcome with the given detail.
func Success(detail string) Outcome {
	return Outcome{Status: StatusSuccess, Detail: detail}
}

// Failure returns a failure Outcome with the given detail.
func Failure(detail string) Outcome {
	return Outcome{Status: StatusFailure, Detail: detail}
}

// Skipped returns a skipped Outcome with the given reason.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Detail: reason}
}

// Marker returns the short bracketed tag used in summary lines.
func (o Outcome) Marker() string {
	switch o.Status {
	case StatusFailure:
		return "[FAIL]"
	case StatusSkipped:
		return "[SKIP]"
	default:
		return "[ OK ]"
	}
}
