// Package prompt renders the single-line shell prompt segment: the
// abbreviated working-directory path wrapped around a colorized summary of
// the enclosing repository's state.
package prompt

// ANSI escape sequences used by the prompt. The color scheme is fixed, not
// configuration.
const (
	colorReset     = "\x1b[m"
	colorAlert     = "\x1b[91;1m"
	colorAhead     = "\x1b[32m"
	colorBehind    = "\x1b[31m"
	colorUnmerged  = "\x1b[91;1m"
	colorStaged    = "\x1b[32m"
	colorUnstaged  = "\x1b[31m"
	colorUntracked = "\x1b[90m"

	// branchIcon is the powerline branch glyph (U+E0A0) in orange.
	branchIcon = "\x1b[38;5;202m\ue0a0" + colorReset

	// noUpstream marks a branch with no configured upstream.
	noUpstream = colorAlert + "↯" + colorReset
)
