package git

import (
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"glint/internal/logging"
)

// Gateway abstracts the version-control backend the prompt reads from.
// Callers depend only on this interface, never on how the answers are
// obtained (subprocess vs. in-process library).
type Gateway interface {
	// RootDir returns the absolute repository root, no trailing separator.
	RootDir() (string, error)
	// Summary returns the parsed state of the repository.
	Summary() (*Summary, error)
}

// runner executes an external command and returns its captured stdout.
// Injectable so tests can substitute canned output.
type runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// cliGateway shells out to the git binary. Each call is a single blocking
// subprocess invocation whose output is fully captured before returning.
type cliGateway struct {
	run    runner
	logger logging.Logger
}

// NewCLIGateway creates a gateway backed by the git binary.
func NewCLIGateway(logger logging.Logger) Gateway {
	return &cliGateway{
		run:    execRunner,
		logger: logger.With("component", "git_cli"),
	}
}

// NewGateway creates a gateway for the configured backend. Unknown backend
// names fall back to the git binary.
func NewGateway(backend string, logger logging.Logger) Gateway {
	if backend == "gogit" {
		return NewGoGitGateway(logger)
	}
	return NewCLIGateway(logger)
}

func (g *cliGateway) git(args ...string) (string, error) {
	out, err := g.run("git", args...)
	if err != nil {
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("git %s: output is not valid UTF-8", args[0])
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// RootDir returns the repository root for the current directory.
func (g *cliGateway) RootDir() (string, error) {
	root, err := g.git("rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return root, nil
}

// Summary runs one combined status query and parses it.
func (g *cliGateway) Summary() (*Summary, error) {
	report, err := g.git("status", "--porcelain=v2", "--branch", "--show-stash")
	if err != nil {
		return nil, err
	}
	summary := ParseStatus(report)
	g.logger.Debug("parsed status report",
		"branch", summary.Branch,
		"stashes", summary.Stashes,
		"has_changes", summary.Status.HasChanges())
	return summary, nil
}
