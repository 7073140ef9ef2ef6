package ports

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
)

// PlatformDetector resolves the host identity consumed by task preconditions.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformDetector interface {
	// Detect reads the os-release identity of the host, falling back to
	// the kernel-reported identity when os-release is unreadable.
	Detect(ctx context.Context) (domain.OSIdentity, error)
}
