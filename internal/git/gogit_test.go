package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

func TestCountStatus(t *testing.T) {
	cases := []struct {
		name     string
		status   gogit.Status
		expected WorkingTree
	}{
		{"empty", gogit.Status{}, WorkingTree{}},
		{
			"staged and unstaged on the same file",
			gogit.Status{
				"loader.go": {Staging: gogit.Modified, Worktree: gogit.Modified},
			},
			WorkingTree{Staged: 1, Unstaged: 1},
		},
		{
			"one of each category",
			gogit.Status{
				"merge.go":  {Staging: gogit.UpdatedButUnmerged, Worktree: gogit.UpdatedButUnmerged},
				"added.go":  {Staging: gogit.Added, Worktree: gogit.Unmodified},
				"dirty.go":  {Staging: gogit.Unmodified, Worktree: gogit.Modified},
				"fresh.go":  {Staging: gogit.Untracked, Worktree: gogit.Untracked},
				"rename.go": {Staging: gogit.Renamed, Worktree: gogit.Unmodified},
			},
			WorkingTree{Unmerged: 1, Staged: 2, Unstaged: 1, Untracked: 1},
		},
		{
			"clean tracked file",
			gogit.Status{
				"main.go": {Staging: gogit.Unmodified, Worktree: gogit.Unmodified},
			},
			WorkingTree{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := countStatus(tc.status); got != tc.expected {
				t.Errorf("countStatus() = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestCountStashes(t *testing.T) {
	t.Run("counts reflog lines", func(t *testing.T) {
		root := t.TempDir()
		logDir := filepath.Join(root, ".git", "logs", "refs")
		if err := os.MkdirAll(logDir, 0755); err != nil {
			t.Fatalf("failed to create reflog dir: %v", err)
		}
		reflog := "0000 1111 user <u@e> 0 +0000\tWIP on master: one\n" +
			"1111 2222 user <u@e> 0 +0000\tWIP on master: two\n"
		if err := os.WriteFile(filepath.Join(logDir, "stash"), []byte(reflog), 0644); err != nil {
			t.Fatalf("failed to write reflog: %v", err)
		}

		if got := countStashes(root); got != 2 {
			t.Errorf("countStashes() = %d, want 2", got)
		}
	})

	t.Run("missing reflog means no stashes", func(t *testing.T) {
		if got := countStashes(t.TempDir()); got != 0 {
			t.Errorf("countStashes() = %d, want 0", got)
		}
	})
}
