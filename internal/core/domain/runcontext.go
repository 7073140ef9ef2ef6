package domain

import "strings"

// OSIdentity is the detected platform identity of the host.
// Fields mirror /etc/os-release, with the kernel release as fallback
// when the file is unreadable.
type OSIdentity struct {
	ID            string
	IDLike        string
	PrettyName    string
	KernelRelease string
}

// DebianFamily reports whether the host is Debian or a Debian derivative.
func (o OSIdentity) DebianFamily() bool {
	if o.ID == "debian" {
		return true
	}
	for _, like := range strings.Fields(o.IDLike) {
		if like == "debian" {
			return true
		}
	}
	return false
}

// Policy holds the operator-tunable knobs of a maintenance run.
type Policy struct {
	// ReportDir is the directory the date-stamped report is written under.
	ReportDir string
	// JournalRetention is the journal vacuum window, e.g. "14d".
	JournalRetention string
	// TmpMaxAgeDays is the age threshold for temp file cleanup.
	TmpMaxAgeDays int
	// DropCaches opts in to dropping kernel page caches after the run.
	DropCaches bool
}

// RunContext carries the read-only facts of one run. It is established
// before ordinary tasks execute and only read by them; the platform
// detection pseudo-task is the single writer of the OS field.
type RunContext struct {
	OS         OSIdentity
	Policy     Policy
	ReportPath string
}

// CommandResult is the captured result of one external command.
// A non-zero exit code is ordinary data, not an error.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
