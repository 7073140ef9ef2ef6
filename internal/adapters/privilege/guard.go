// Package privilege implements the elevated-privilege guard.
package privilege

import (
	"os"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Guard implements ports.PrivilegeGuard by checking the effective UID.
type Guard struct {
	euid func() int
}

// NewGuard creates a Guard reading the real effective UID.
func NewGuard() *Guard {
	return &Guard{euid: os.Geteuid}
}

// NewGuardWithEUID creates a Guard with an injected UID source. Used for testing.
func NewGuardWithEUID(euid func() int) *Guard {
	return &Guard{euid: euid}
}

// Check reads the effective UID exactly once and returns
// domain.ErrPermissionDenied if the process is not running as root.
func (g *Guard) Check() error {
	if id := g.euid(); id != 0 {
		return zerr.With(domain.ErrPermissionDenied, "euid", id)
	}
	return nil
}
