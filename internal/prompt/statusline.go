package prompt

import (
	"fmt"
	"os"
	"strings"

	"glint/internal/git"
	"glint/internal/logging"
)

// Assemble splits current at the repository boundary and joins the two
// abbreviated halves around the rendered repository fragment. The gateway
// contract guarantees root is a separator-aligned prefix of current; a
// violation is surfaced as an error rather than a garbled prompt.
func Assemble(current, root, stat string, keep int) (string, error) {
	if len(root) > len(current) || current[:len(root)] != root {
		return "", fmt.Errorf("repository root %q is not a prefix of %q", root, current)
	}
	if len(current) > len(root) && current[len(root)] != '/' {
		return "", fmt.Errorf("repository root %q does not end on a path boundary in %q", root, current)
	}

	common := current[:len(root)]
	remainder := current[len(root):]
	return Abbreviate(common, keep) + stat + Abbreviate(remainder, keep), nil
}

// Statusline renders the prompt segment for the process working directory.
// An unresolvable working directory yields an empty string; a broken prompt
// segment must never break the shell.
func Statusline(gateway git.Gateway, keep int, logger logging.Logger) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Error("failed to resolve working directory", "error", err)
		return "", nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Line(gateway, cwd, home, keep, logger)
}

// Line renders the prompt segment for an explicit directory. Outside a
// repository the abbreviated path is rendered alone.
func Line(gateway git.Gateway, cwd, home string, keep int, logger logging.Logger) (string, error) {
	cwd = collapseHome(cwd, home)

	root, err := gateway.RootDir()
	if err != nil {
		logger.Debug("not inside a repository", "error", err)
		return Abbreviate(cwd, keep), nil
	}
	root = collapseHome(root, home)

	summary, err := gateway.Summary()
	if err != nil {
		logger.Warn("failed to summarize repository", "error", err)
		return Abbreviate(cwd, keep), nil
	}

	return Assemble(cwd, root, Stat(summary), keep)
}

// collapseHome rewrites a path under home with a leading ~.
func collapseHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, home) {
		return path
	}
	if len(path) > len(home) && path[len(home)] != '/' {
		return path
	}
	return "~" + path[len(home):]
}
