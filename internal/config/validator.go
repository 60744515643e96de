package config

import "fmt"

// Validate checks that a configuration is usable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.Path.KeepSegments < 0 {
		return fmt.Errorf("path.keep_segments must be non-negative, got %d", cfg.Path.KeepSegments)
	}

	switch cfg.Git.Backend {
	case "cli", "gogit":
	default:
		return fmt.Errorf("git.backend must be \"cli\" or \"gogit\", got %q", cfg.Git.Backend)
	}

	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", cfg.Logging.Level)
	}

	return nil
}
