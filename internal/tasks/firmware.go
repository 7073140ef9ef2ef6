package tasks

import (
	"context"
	"fmt"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// fwupdmgr reports "nothing to do" with this exit code.
const fwupdNothingToDo = 2

// firmwareRefresh refreshes firmware metadata and applies pending updates.
func firmwareRefresh(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name: "firmware-refresh",
		Precondition: func(rc *domain.RunContext) bool {
			return runner.LookPath("fwupdmgr")
		},
		SkipReason: "fwupdmgr not installed",
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			res, err := runner.Run(ctx, "fwupdmgr", "refresh", "--force")
			if err != nil {
				return domain.Failure("fwupdmgr could not start: " + err.Error())
			}
			if res.ExitCode != 0 && res.ExitCode != fwupdNothingToDo {
				return domain.Failure(fmt.Sprintf("firmware metadata refresh failed, exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}

			res, err = runner.Run(ctx, "fwupdmgr", "update", "-y", "--no-reboot-check")
			if err != nil {
				return domain.Failure("fwupdmgr could not start: " + err.Error())
			}
			switch res.ExitCode {
			case 0:
				return domain.Success("firmware updates applied")
			case fwupdNothingToDo:
				return domain.Success("no firmware updates available")
			default:
				return domain.Failure(fmt.Sprintf("firmware update failed, exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}
		},
	}
}
