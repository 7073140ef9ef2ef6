package tasks

import (
	"context"
	"fmt"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// journalVacuum trims the systemd journal to the policy retention window.
func journalVacuum(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name: "journal-vacuum",
		Precondition: func(rc *domain.RunContext) bool {
			return runner.LookPath("journalctl")
		},
		SkipReason: "journalctl not available",
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			retention := rc.Policy.JournalRetention
			res, err := runner.Run(ctx, "journalctl", "--vacuum-time="+retention)
			if err != nil {
				return domain.Failure("journalctl could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("journal vacuum failed, exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}
			return domain.Success("journal vacuumed to " + retention)
		},
	}
}
