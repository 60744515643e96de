package prompt

import (
	"strconv"
	"strings"

	"glint/internal/git"
)

// RenderAheadBehind renders the divergence fragment. nil means no upstream
// is configured and renders the alert glyph; {0, 0} renders nothing.
func RenderAheadBehind(ab *git.AheadBehind) string {
	if ab == nil {
		return noUpstream
	}

	var b strings.Builder
	if ab.Ahead > 0 {
		b.WriteString(colorAhead)
		b.WriteString("↑")
		b.WriteString(strconv.Itoa(ab.Ahead))
	}
	if ab.Behind > 0 {
		b.WriteString(colorBehind)
		b.WriteString("↓")
		b.WriteString(strconv.Itoa(ab.Behind))
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteString(colorReset)
	return b.String()
}

// RenderStatus renders the working-tree counts in fixed order with a single
// trailing reset. A clean tree renders as the empty string; the caller adds
// the surrounding parentheses.
func RenderStatus(status git.WorkingTree) string {
	if !status.HasChanges() {
		return ""
	}

	var b strings.Builder
	if status.Unmerged > 0 {
		b.WriteString(colorUnmerged)
		b.WriteString(strconv.Itoa(status.Unmerged))
	}
	if status.Staged > 0 {
		b.WriteString(colorStaged)
		b.WriteString(strconv.Itoa(status.Staged))
	}
	if status.Unstaged > 0 {
		b.WriteString(colorUnstaged)
		b.WriteString(strconv.Itoa(status.Unstaged))
	}
	if status.Untracked > 0 {
		b.WriteString(colorUntracked)
		b.WriteString(strconv.Itoa(status.Untracked))
	}
	b.WriteString(colorReset)
	return b.String()
}

// RenderStash renders the stash count in curly braces, uncolored, or the
// empty string when there are no stashes.
func RenderStash(count int) string {
	if count == 0 {
		return ""
	}
	return "{" + strconv.Itoa(count) + "}"
}

// Stat renders the complete repository fragment: icon, branch, divergence,
// working-tree counts and stash count.
func Stat(summary *git.Summary) string {
	var b strings.Builder
	b.WriteString(branchIcon)
	b.WriteString(summary.Branch)
	b.WriteString(RenderAheadBehind(summary.AheadBehind))
	if summary.Status.HasChanges() {
		b.WriteString("(")
		b.WriteString(RenderStatus(summary.Status))
		b.WriteString(")")
	}
	b.WriteString(RenderStash(summary.Stashes))
	return b.String()
}
