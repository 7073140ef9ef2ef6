// Package config provides the policy loader for upkeep.
package config

import (
	"os"
	"regexp"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the well-known policy file location.
const DefaultPath = "/etc/upkeep.yaml"

// Loader implements ports.PolicyLoader over a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validRetentionRegex = regexp.MustCompile(`^[0-9]+[dhm]$`)

// DefaultPolicy returns the policy used when no file is present.
func DefaultPolicy() domain.Policy {
	return domain.Policy{
		ReportDir:        os.TempDir(),
		JournalRetention: "14d",
		TmpMaxAgeDays:    7,
		DropCaches:       false,
	}
}

// Load reads the policy file at path. An empty path falls back to
// DefaultPath; a missing file yields the default policy.
func (l *Loader) Load(path string) (domain.Policy, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path) //nolint:gosec // operator-chosen policy path
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultPolicy(), nil
		}
		return domain.Policy{}, zerr.With(zerr.Wrap(err, domain.ErrPolicyReadFailed.Error()), "path", path)
	}

	var file PolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Policy{}, zerr.With(zerr.Wrap(err, domain.ErrPolicyParseFailed.Error()), "path", path)
	}

	policy := DefaultPolicy()
	if file.Report.Dir != "" {
		policy.ReportDir = file.Report.Dir
	}
	if file.Journal.Retention != "" {
		policy.JournalRetention = file.Journal.Retention
	}
	if file.Tmp.MaxAgeDays != 0 {
		policy.TmpMaxAgeDays = file.Tmp.MaxAgeDays
	}
	policy.DropCaches = file.Caches.Drop

	if err := validate(policy); err != nil {
		return domain.Policy{}, zerr.With(err, "path", path)
	}

	l.Logger.Info("loaded policy from " + path)
	return policy, nil
}

func validate(p domain.Policy) error {
	if !validRetentionRegex.MatchString(p.JournalRetention) {
		return zerr.With(domain.ErrInvalidRetention, "retention", p.JournalRetention)
	}
	if p.TmpMaxAgeDays < 1 {
		return zerr.With(domain.ErrInvalidTmpMaxAge, "maxAgeDays", p.TmpMaxAgeDays)
	}
	return nil
}
