package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"glint/internal/config"
)

// newConfigCmd creates the config command and its subcommands
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View and modify configuration",
		Long:  "View and modify glint configuration settings (~/.glint/config.yaml)",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long:  "Create ~/.glint/config.yaml with default values if it does not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleConfigInit(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the merged configuration (defaults, file, environment) as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleConfigShow(cmd)
		},
	})

	return configCmd
}

// handleConfigInit implements the config init command logic
func handleConfigInit(cmd *cobra.Command) error {
	if err := config.EnsureConfigFile(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration initialized")
	return nil
}

// handleConfigShow implements the config show command logic
func handleConfigShow(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
