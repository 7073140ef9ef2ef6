// Package platform implements host identity detection.
package platform

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

const osReleasePath = "/etc/os-release"

// Detector implements ports.PlatformDetector by parsing /etc/os-release,
// falling back to the kernel-reported identity via uname(2).
type Detector struct {
	// Path of the os-release file. Overridable for testing.
	Path string
}

// NewDetector creates a Detector reading the well-known os-release path.
func NewDetector() *Detector {
	return &Detector{Path: osReleasePath}
}

// Detect resolves the host identity.
func (d *Detector) Detect(_ context.Context) (domain.OSIdentity, error) {
	id := domain.OSIdentity{}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		id.KernelRelease = unix.ByteSliceToString(uts.Release[:])
	}

	data, err := os.ReadFile(d.Path)
	if err != nil {
		if id.KernelRelease == "" {
			return domain.OSIdentity{}, zerr.With(zerr.Wrap(err, domain.ErrOSDetectionFailed.Error()), "path", d.Path)
		}
		// os-release unreadable; kernel identity is all we have.
		id.PrettyName = "Linux " + id.KernelRelease
		return id, nil
	}

	parseOSRelease(string(data), &id)
	if id.PrettyName == "" {
		id.PrettyName = "Linux " + id.KernelRelease
	}
	return id, nil
}

// parseOSRelease fills identity fields from os-release KEY=value lines.
// Values may be quoted; unknown keys are ignored.
func parseOSRelease(data string, id *domain.OSIdentity) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)

		switch key {
		case "ID":
			id.ID = value
		case "ID_LIKE":
			id.IDLike = value
		case "PRETTY_NAME":
			id.PrettyName = value
		}
	}
}
