package config

// PolicyFile represents the structure of the upkeep.yaml policy file.
type PolicyFile struct {
	Version string     `yaml:"version"`
	Report  ReportDTO  `yaml:"report"`
	Journal JournalDTO `yaml:"journal"`
	Tmp     TmpDTO     `yaml:"tmp"`
	Caches  CachesDTO  `yaml:"caches"`
}

// ReportDTO configures the report destination.
type ReportDTO struct {
	Dir string `yaml:"dir"`
}

// JournalDTO configures journal vacuuming.
type JournalDTO struct {
	Retention string `yaml:"retention"`
}

// TmpDTO configures temp file cleanup.
type TmpDTO struct {
	MaxAgeDays int `yaml:"maxAgeDays"`
}

// CachesDTO configures the opt-in kernel cache drop.
type CachesDTO struct {
	Drop bool `yaml:"drop"`
}
