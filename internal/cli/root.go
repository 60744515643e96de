package cli

import (
	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
)

// NewRootCmd creates and returns the root command for glint
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glint",
		Short: "Render a git-aware shell prompt segment",
		Long: `Glint renders a single-line, color-coded prompt segment for the
current working directory: the path abbreviated up to the repository root,
the repository state (branch, ahead/behind, working-tree counts, stashes),
and the abbreviated path below the root.

Invoked with no arguments it writes the segment to stdout, ready to be
embedded in PS1 or an equivalent shell hook.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlePrompt(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
