package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"glint/internal/logging"
)

// detachedMarker matches the branch.head sentinel emitted by porcelain v2,
// so both backends render detached state identically.
const detachedMarker = "(detached)"

// goGitGateway answers gateway queries in-process via go-git. It exists for
// environments without a git binary on PATH; the subprocess gateway remains
// the default backend.
type goGitGateway struct {
	logger logging.Logger
}

// NewGoGitGateway creates a gateway backed by the go-git library.
func NewGoGitGateway(logger logging.Logger) Gateway {
	return &goGitGateway{logger: logger.With("component", "git_gogit")}
}

func (g *goGitGateway) open() (*gogit.Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// RootDir returns the worktree root of the enclosing repository.
func (g *goGitGateway) RootDir() (string, error) {
	repo, err := g.open()
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// Summary assembles the repository state from go-git primitives.
func (g *goGitGateway) Summary() (*Summary, error) {
	repo, err := g.open()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}

	head, err := repo.Head()
	if err != nil {
		// Unborn branch (fresh repository): no branch, no upstream.
		g.logger.Debug("no HEAD reference", "error", err)
	} else if head.Name().IsBranch() {
		summary.Branch = head.Name().Short()
		summary.AheadBehind = g.aheadBehind(repo, head)
	} else {
		summary.Branch = detachedMarker
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}
	summary.Status = countStatus(status)

	summary.Stashes = countStashes(wt.Filesystem.Root())

	return summary, nil
}

// aheadBehind resolves the tracking ref for the current branch and counts
// divergence. Returns nil when no upstream is configured or the tracking
// ref cannot be resolved, matching the porcelain "no branch.ab" case.
func (g *goGitGateway) aheadBehind(repo *gogit.Repository, head *plumbing.Reference) *AheadBehind {
	cfg, err := repo.Config()
	if err != nil {
		g.logger.Debug("failed to read repository config", "error", err)
		return nil
	}

	branch, ok := cfg.Branches[head.Name().Short()]
	if !ok || branch.Remote == "" || branch.Merge == "" {
		return nil
	}

	remoteName := plumbing.NewRemoteReferenceName(branch.Remote, branch.Merge.Short())
	upstream, err := repo.Reference(remoteName, true)
	if err != nil {
		g.logger.Debug("tracking ref not found", "ref", remoteName.String(), "error", err)
		return nil
	}

	ab, err := countAheadBehind(repo, head.Hash(), upstream.Hash())
	if err != nil {
		g.logger.Debug("failed to count divergence", "error", err)
		return nil
	}
	return ab
}

// countAheadBehind compares the ancestor sets of the two tips.
func countAheadBehind(repo *gogit.Repository, local, upstream plumbing.Hash) (*AheadBehind, error) {
	if local == upstream {
		return &AheadBehind{}, nil
	}

	localSet, err := ancestorSet(repo, local)
	if err != nil {
		return nil, err
	}
	upstreamSet, err := ancestorSet(repo, upstream)
	if err != nil {
		return nil, err
	}

	ab := &AheadBehind{}
	for hash := range localSet {
		if _, ok := upstreamSet[hash]; !ok {
			ab.Ahead++
		}
	}
	for hash := range upstreamSet {
		if _, ok := localSet[hash]; !ok {
			ab.Behind++
		}
	}
	return ab, nil
}

// ancestorSet returns the hashes of tip and all its ancestors.
func ancestorSet(repo *gogit.Repository, tip plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	commit, err := repo.CommitObject(tip)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit object: %w", err)
	}

	set := make(map[plumbing.Hash]struct{})
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		set[c.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}
	return set, nil
}

// countStatus reduces a go-git status map to the four prompt counts. A file
// with both index and worktree changes counts toward staged and unstaged.
func countStatus(status gogit.Status) WorkingTree {
	var wt WorkingTree
	for _, fs := range status {
		if fs.Staging == gogit.UpdatedButUnmerged || fs.Worktree == gogit.UpdatedButUnmerged {
			wt.Unmerged++
			continue
		}
		if fs.Worktree == gogit.Untracked {
			wt.Untracked++
			continue
		}
		if fs.Staging != gogit.Unmodified {
			wt.Staged++
		}
		if fs.Worktree != gogit.Unmodified {
			wt.Unstaged++
		}
	}
	return wt
}

// countStashes counts entries in the stash reflog. go-git has no stash API,
// but each `git stash push` appends one line to .git/logs/refs/stash.
func countStashes(root string) int {
	data, err := os.ReadFile(filepath.Join(root, ".git", "logs", "refs", "stash"))
	if err != nil {
		return 0
	}
	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			count++
		}
	}
	return count
}
