package tasks

import (
	"context"
	"fmt"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// dropCaches syncs dirty pages and drops the kernel page cache.
// Opt-in by policy: dropping caches on a loaded host costs real
// performance, so the default is off.
func dropCaches(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name: "drop-caches",
		Precondition: func(rc *domain.RunContext) bool {
			return rc.Policy.DropCaches
		},
		SkipReason: "cache drop not enabled by policy",
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			res, err := runner.Run(ctx, "sync")
			if err != nil {
				return domain.Failure("sync could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("sync exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}

			res, err = runner.Run(ctx, "sh", "-c", "echo 3 > /proc/sys/vm/drop_caches")
			if err != nil {
				return domain.Failure("cache drop could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("cache drop failed, exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}
			return domain.Success("page cache, dentries and inodes dropped")
		},
	}
}
