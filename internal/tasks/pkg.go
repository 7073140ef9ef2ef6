package tasks

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

const skipNotDebian = "not a Debian-family host or apt-get unavailable"

// pkgRefresh updates the package lists. It must run before pkgUpgrade.
func pkgRefresh(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name:         "pkg-refresh",
		Precondition: debianWithTool(runner, "apt-get"),
		SkipReason:   skipNotDebian,
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			res, err := runner.Run(ctx, "apt-get", "update")
			if err != nil {
				return domain.Failure("apt-get update could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("package list refresh failed, apt-get update exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}
			return domain.Success("package lists refreshed")
		},
	}
}

// pkgUpgrade applies pending package upgrades.
func pkgUpgrade(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name:         "pkg-upgrade",
		Precondition: debianWithTool(runner, "apt-get"),
		SkipReason:   skipNotDebian,
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			res, err := runner.Run(ctx, "apt-get", "-y", "-o", "Dpkg::Options::=--force-confdef", "dist-upgrade")
			if err != nil {
				return domain.Failure("apt-get dist-upgrade could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("package upgrade failed, apt-get exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}
			if strings.Contains(string(res.Stdout), "0 upgraded, 0 newly installed") {
				return domain.Success("all packages already up to date")
			}
			return domain.Success("pending package upgrades applied")
		},
	}
}

// pkgAutoremove purges packages no longer required.
func pkgAutoremove(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name:         "pkg-autoremove",
		Precondition: debianWithTool(runner, "apt-get"),
		SkipReason:   skipNotDebian,
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			res, err := runner.Run(ctx, "apt-get", "-y", "--purge", "autoremove")
			if err != nil {
				return domain.Failure("apt-get autoremove could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("autoremove failed, apt-get exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}
			return domain.Success("orphaned packages purged")
		},
	}
}

// kernelPurge removes superseded kernel images. Ordered after the package
// tasks so it only ever sees a consistent package state.
func kernelPurge(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name:         "kernel-purge",
		Precondition: debianWithTool(runner, "purge-old-kernels"),
		SkipReason:   "purge-old-kernels not installed or not a Debian-family host",
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			res, err := runner.Run(ctx, "purge-old-kernels", "--keep", "2", "-qy")
			if err != nil {
				return domain.Failure("purge-old-kernels could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("kernel purge failed, exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}
			return domain.Success("old kernels purged, keeping 2")
		},
	}
}
