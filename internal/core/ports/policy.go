package ports

import "go.trai.ch/upkeep/internal/core/domain"

// PolicyLoader loads the operator policy for a run.
//
//go:generate mockgen -source=policy.go -destination=mocks/mock_policy.go -package=mocks
type PolicyLoader interface {
	// Load reads the policy file at path. An empty path falls back to the
	// well-known location; a missing file yields the default policy.
	Load(path string) (domain.Policy, error)
}
