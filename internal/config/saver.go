package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configFilePerm = 0600
	configDirPerm  = 0755
)

// Save writes the configuration to ~/.glint/config.yaml in YAML format,
// creating the config directory if needed. Paths under the home directory
// are written in ~ notation for readability.
func Save(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, configDirName)
	if err := os.MkdirAll(configDir, configDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	saveCfg := *cfg
	saveCfg.Logging.FilePath = convertPathToTilde(cfg.Logging.FilePath, homeDir)

	data, err := yaml.Marshal(&saveCfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	configPath := filepath.Join(configDir, configFileName+"."+configFileType)
	if err := os.WriteFile(configPath, data, configFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EnsureConfigFile creates the configuration file with default values if it
// does not exist yet.
func EnsureConfigFile() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, configDirName, configFileName+"."+configFileType)
	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := Save(Default()); err != nil {
		return fmt.Errorf("failed to create default config: %w", err)
	}

	return nil
}

// convertPathToTilde converts an absolute path to ~ notation if it is
// within the user's home directory, otherwise returns the path as-is.
func convertPathToTilde(path, homeDir string) string {
	if path == "" || strings.HasPrefix(path, "~") {
		return path
	}

	relPath, err := filepath.Rel(homeDir, path)
	if err != nil {
		return path
	}
	if strings.HasPrefix(relPath, "..") {
		return path
	}
	if relPath == "." {
		return "~"
	}
	return filepath.Join("~", relPath)
}
