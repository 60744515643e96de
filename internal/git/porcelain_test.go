package git

import "testing"

func TestParseStatusEmptyReport(t *testing.T) {
	summary := ParseStatus("")

	if summary.Branch != "" {
		t.Errorf("expected empty branch, got %q", summary.Branch)
	}
	if summary.AheadBehind != nil {
		t.Errorf("expected nil AheadBehind, got %+v", summary.AheadBehind)
	}
	if summary.Status.HasChanges() {
		t.Errorf("expected clean status, got %+v", summary.Status)
	}
	if summary.Stashes != 0 {
		t.Errorf("expected 0 stashes, got %d", summary.Stashes)
	}
}

func TestParseStatusDetachedHead(t *testing.T) {
	report := `
# branch.oid (initial)
# branch.head (detached)
1 MM N... 100644 100644 100644 3e2ceb914cf9be46bf235432781840f4145363fd 3e2ceb914cf9be46bf235432781840f4145363fd README.md
`
	summary := ParseStatus(report)

	if summary.Branch != "(detached)" {
		t.Errorf("expected branch %q, got %q", "(detached)", summary.Branch)
	}
	if summary.AheadBehind != nil {
		t.Errorf("expected nil AheadBehind, got %+v", summary.AheadBehind)
	}
	expected := WorkingTree{Staged: 1, Unstaged: 1}
	if summary.Status != expected {
		t.Errorf("expected status %+v, got %+v", expected, summary.Status)
	}
}

func TestParseStatusFullReport(t *testing.T) {
	report := `
# branch.oid 51c9c58e2175b768137c1e38865f394c76a7d49d
# branch.head master
# branch.upstream origin/master
# branch.ab +1 -10
# stash 3
1 MM N... 100644 100644 100644 3e2ceb914cf9be46bf235432781840f4145363fd 3e2ceb914cf9be46bf235432781840f4145363fd loader.go
1 .M N... 100644 100644 100644 cecb683e6e626bcba909ddd36d3357d49f0cfd09 cecb683e6e626bcba909ddd36d3357d49f0cfd09 saver.go
1 .M N... 100644 100644 100644 aea984b7df090ce3a5826a854f3e5364cd8f2ccd aea984b7df090ce3a5826a854f3e5364cd8f2ccd logger.go
1 .M N... 100644 100644 100644 aea984b7df090ce3a5826a854f3e5364cd8f2ccd aea984b7df090ce3a5826a854f3e5364cd8f2ccd noop.go
1 D. N... 100644 100644 000000 6d9532ba55b84ec4faf214f9cdb9ce70ec8f4f5b 6d9532ba55b84ec4faf214f9cdb9ce70ec8f4f5b legacy.go
2 R. N... 100644 100644 100644 44d0a25072ee3706a8015bef72bdd2c4ab6da76d 44d0a25072ee3706a8015bef72bdd2c4ab6da76d R100 colors.go	palette.go
1 A. N... 000000 100644 100644 0000000000000000000000000000000000000000 e85207e04dfdd5eb0a1e9febbc67fd837c44a1cd format.go
u UU N... 100644 100644 100644 100644 ac51efdc3df4f4fd328d1a02ad05331d8e2c9111 36c06c8752c78d2aff89571132f3bf7841a7b5c3 e85207e04dfdd5eb0a1e9febbc67fd837c44a1cd hw.rb
? notes.txt
? a.out
? tags
? scratch.go
? vendor/
`
	summary := ParseStatus(report)

	if summary.Branch != "master" {
		t.Errorf("expected branch %q, got %q", "master", summary.Branch)
	}
	if summary.AheadBehind == nil {
		t.Fatal("expected AheadBehind, got nil")
	}
	if *summary.AheadBehind != (AheadBehind{Ahead: 1, Behind: 10}) {
		t.Errorf("expected ahead 1 behind 10, got %+v", *summary.AheadBehind)
	}
	expected := WorkingTree{Unmerged: 1, Staged: 4, Unstaged: 4, Untracked: 5}
	if summary.Status != expected {
		t.Errorf("expected status %+v, got %+v", expected, summary.Status)
	}
	if summary.Stashes != 3 {
		t.Errorf("expected 3 stashes, got %d", summary.Stashes)
	}
}

func TestParseStatusSkipsMalformedLines(t *testing.T) {
	report := `
#
# branch.ab +1
# branch.ab +x -y
# something.unknown value
! ignored.go
garbage line
1 M
`
	summary := ParseStatus(report)

	if summary.AheadBehind != nil {
		t.Errorf("expected nil AheadBehind for malformed headers, got %+v", summary.AheadBehind)
	}
	if summary.Status.HasChanges() {
		t.Errorf("expected clean status, got %+v", summary.Status)
	}
}

func TestWorkingTreeHasChanges(t *testing.T) {
	cases := []struct {
		name     string
		status   WorkingTree
		expected bool
	}{
		{"zero", WorkingTree{}, false},
		{"unmerged", WorkingTree{Unmerged: 1}, true},
		{"staged", WorkingTree{Staged: 1}, true},
		{"unstaged", WorkingTree{Unstaged: 1}, true},
		{"untracked", WorkingTree{Untracked: 1}, true},
		{"all", WorkingTree{Unmerged: 1, Staged: 1, Unstaged: 1, Untracked: 1}, true},
		{"large counts", WorkingTree{Staged: 4000, Untracked: 9001}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.status.HasChanges(); got != tc.expected {
				t.Errorf("HasChanges(%+v) = %v, want %v", tc.status, got, tc.expected)
			}
		})
	}
}
