// Package tasks declares the ordered maintenance task registry.
//
// The registry order is a contract: package lists are refreshed before the
// upgrade, kernels are purged only once the package state is consistent,
// and the platform detection pseudo-task always runs first because later
// preconditions read its result.
package tasks

import (
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// Registry returns the ordered maintenance task list.
func Registry(runner ports.CommandRunner, detector ports.PlatformDetector) []domain.Task {
	return []domain.Task{
		osRelease(detector),
		pkgRefresh(runner),
		pkgUpgrade(runner),
		pkgAutoremove(runner),
		kernelPurge(runner),
		journalVacuum(runner),
		tmpClean(runner),
		homeAudit(runner),
		firmwareRefresh(runner),
		dropCaches(runner),
	}
}

// Names returns the registry task names in execution order, using a
// runner-free registry. Preconditions are not evaluated.
func Names() []string {
	reg := Registry(nil, nil)
	names := make([]string, 0, len(reg))
	for _, t := range reg {
		names = append(names, t.Name)
	}
	return names
}

// excerpt condenses captured stderr into a single short detail fragment.
func excerpt(stderr []byte) string {
	s := strings.TrimSpace(string(stderr))
	if s == "" {
		return "no error output"
	}
	if line, _, ok := strings.Cut(s, "\n"); ok {
		s = line + " ..."
	}
	const maxLen = 160
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}

// debianWithTool builds the shared precondition of the apt-based tasks.
func debianWithTool(runner ports.CommandRunner, tool string) func(rc *domain.RunContext) bool {
	return func(rc *domain.RunContext) bool {
		return rc.OS.DebianFamily() && runner.LookPath(tool)
	}
}
