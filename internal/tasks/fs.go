package tasks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// Ordinary login accounts occupy this UID range; system accounts and the
// nobody user fall outside it.
const (
	uidMin = 1000
	uidMax = 65534
)

// tmpClean removes temp files older than the policy age threshold.
// The live report file is excluded explicitly, it lives under the same tree.
func tmpClean(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name: "tmp-clean",
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			age := "+" + strconv.Itoa(rc.Policy.TmpMaxAgeDays)
			res, err := runner.Run(ctx, "find", "/tmp", "-xdev", "-mindepth", "1", "-type", "f",
				"-mtime", age, "!", "-path", rc.ReportPath, "-print", "-delete")
			if err != nil {
				return domain.Failure("find could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("temp cleanup failed, find exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}

			removed := countLines(res.Stdout)
			if removed == 0 {
				return domain.Success("no stale temp files found")
			}
			return domain.Success(fmt.Sprintf("removed %d stale temp files older than %d days", removed, rc.Policy.TmpMaxAgeDays))
		},
	}
}

// homeAudit reports per-user cache usage for ordinary login accounts.
// Read-only: it never deletes anything.
func homeAudit(runner ports.CommandRunner) domain.Task {
	return domain.Task{
		Name: "home-audit",
		Precondition: func(rc *domain.RunContext) bool {
			return runner.LookPath("getent")
		},
		SkipReason: "getent not available",
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			res, err := runner.Run(ctx, "getent", "passwd")
			if err != nil {
				return domain.Failure("getent could not start: " + err.Error())
			}
			if res.ExitCode != 0 {
				return domain.Failure(fmt.Sprintf("account enumeration failed, getent exited %d: %s", res.ExitCode, excerpt(res.Stderr)))
			}

			homes := loginHomes(string(res.Stdout))
			if len(homes) == 0 {
				return domain.Success("no login accounts in UID range")
			}

			var audited int
			var totalKB int64
			for _, home := range homes {
				du, err := runner.Run(ctx, "du", "-sk", home+"/.cache")
				if err != nil || du.ExitCode != 0 {
					// Absent cache directory; nothing to report for this user.
					continue
				}
				kb, _, _ := strings.Cut(strings.TrimSpace(string(du.Stdout)), "\t")
				if n, err := strconv.ParseInt(kb, 10, 64); err == nil {
					totalKB += n
					audited++
				}
			}

			if audited == 0 {
				return domain.Success(fmt.Sprintf("%d login accounts, no cache directories found", len(homes)))
			}
			return domain.Success(fmt.Sprintf("%d of %d login accounts hold %d MiB of caches", audited, len(homes), totalKB/1024))
		},
	}
}

// loginHomes extracts home directories of accounts with a UID in
// [uidMin, uidMax) from passwd-format output.
func loginHomes(passwd string) []string {
	var homes []string
	for _, line := range strings.Split(passwd, "\n") {
		fields := strings.Split(line, ":")
		if len(fields) < 6 {
			continue
		}
		uid, err := strconv.Atoi(fields[2])
		if err != nil || uid < uidMin || uid >= uidMax {
			continue
		}
		if fields[5] != "" {
			homes = append(homes, fields[5])
		}
	}
	return homes
}

func countLines(out []byte) int {
	s := strings.TrimSpace(string(out))
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
