package cli

import (
	"fmt"
	"io"

	"glint/internal/config"
	"glint/internal/git"
	"glint/internal/logging"
	"glint/internal/prompt"
)

// handlePrompt renders the prompt segment to w with no trailing newline.
// Configuration or logging trouble degrades to defaults instead of failing;
// only a gateway contract breach surfaces as an error.
func handlePrompt(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		logger = logging.NewNoopLogger()
	}

	gateway := git.NewGateway(cfg.Git.Backend, logger)

	line, err := prompt.Statusline(gateway, cfg.Path.KeepSegments, logger)
	if err != nil {
		return fmt.Errorf("failed to assemble prompt: %w", err)
	}

	fmt.Fprint(w, line)
	return nil
}
