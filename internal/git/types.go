package git

// AheadBehind represents the divergence between the current branch and its
// upstream. A nil *AheadBehind means no upstream is configured, which is a
// different state than being in sync ({0, 0}).
type AheadBehind struct {
	Ahead  int // Commits only on the local branch
	Behind int // Commits only on the upstream branch
}

// WorkingTree holds per-category file counts for the working tree. Only
// counts are kept; file identities are not retained.
type WorkingTree struct {
	Unmerged  int // Conflicted entries
	Staged    int // Index differs from HEAD
	Unstaged  int // Worktree differs from index
	Untracked int // Not in the index
}

// HasChanges reports whether any of the four counts is nonzero.
func (wt WorkingTree) HasChanges() bool {
	return wt.Unmerged > 0 || wt.Staged > 0 || wt.Unstaged > 0 || wt.Untracked > 0
}

// Summary is the parsed state of a repository, built once per invocation
// and immutable afterwards.
type Summary struct {
	Branch      string       // Branch name, "(detached)", or empty
	AheadBehind *AheadBehind // nil when no upstream is configured
	Status      WorkingTree
	Stashes     int
}
