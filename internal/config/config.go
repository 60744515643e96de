package config

// Config represents the root configuration structure for glint
type Config struct {
	Path    PathConfig    `mapstructure:"path" yaml:"path"`
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// PathConfig controls how directory paths are abbreviated
type PathConfig struct {
	// KeepSegments is the number of trailing path segments left unabbreviated
	// on each side of the repository boundary.
	KeepSegments int `mapstructure:"keep_segments" yaml:"keep_segments"`
}

// GitConfig selects the version-control backend
type GitConfig struct {
	// Backend is "cli" (git binary) or "gogit" (in-process go-git).
	Backend string `mapstructure:"backend" yaml:"backend"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`
	FilePath string `mapstructure:"file_path" yaml:"file_path"`
	Console  bool   `mapstructure:"console" yaml:"console"`
}
