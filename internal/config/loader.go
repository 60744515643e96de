package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = ".glint"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "GLINT"
)

// Load loads the configuration from file, environment variables, and defaults.
// Precedence, highest first:
// 1. Environment variables (GLINT_ prefix)
// 2. Configuration file (~/.glint/config.yaml)
// 3. Default values
func Load() (*Config, error) {
	v := viper.New()

	if err := initViper(v); err != nil {
		return nil, fmt.Errorf("failed to initialize viper: %w", err)
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Logging.FilePath = expandHomeDir(cfg.Logging.FilePath)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration, used when loading fails. The
// prompt must keep rendering even with a broken config file.
func Default() *Config {
	return &Config{
		Path:    PathConfig{KeepSegments: 1},
		Git:     GitConfig{Backend: "cli"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// initViper points viper at the config file and environment
func initViper(v *viper.Viper) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, configDirName, configFileName+"."+configFileType)
	v.SetConfigFile(configPath)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// A missing config file is fine - defaults apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// setDefaults registers default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("path.keep_segments", 1)
	v.SetDefault("git.backend", "cli")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file_path", "")
	v.SetDefault("logging.console", false)
}

// expandHomeDir expands ~ in a path to the user's home directory
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return homeDir
		}
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
