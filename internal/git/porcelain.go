package git

import (
	"strconv"
	"strings"
)

// ParseStatus parses the output of `git status --porcelain=v2 --branch
// --show-stash` into a Summary. Unknown headers, unexpected record tags and
// malformed lines are skipped so that newer git versions cannot break the
// prompt.
func ParseStatus(report string) *Summary {
	summary := &Summary{}

	for _, line := range strings.Split(report, "\n") {
		if line == "" {
			continue
		}

		switch line[0] {
		case '#':
			parseHeaderLine(line, summary)
		case 'u':
			summary.Status.Unmerged++
		case '1', '2':
			// Ordinary and rename/copy records carry the two status-code
			// characters at fixed offsets; '.' marks "unchanged".
			if len(line) < 4 {
				continue
			}
			if line[2] != '.' {
				summary.Status.Staged++
			}
			if line[3] != '.' {
				summary.Status.Unstaged++
			}
		case '?':
			summary.Status.Untracked++
		}
	}

	return summary
}

// parseHeaderLine handles "# <key> <values...>" records.
func parseHeaderLine(line string, summary *Summary) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return
	}

	switch fields[1] {
	case "branch.head":
		summary.Branch = fields[2]
	case "branch.ab":
		if len(fields) < 4 {
			return
		}
		ahead, err := strconv.Atoi(strings.TrimPrefix(fields[2], "+"))
		if err != nil {
			return
		}
		behind, err := strconv.Atoi(strings.TrimPrefix(fields[3], "-"))
		if err != nil {
			return
		}
		summary.AheadBehind = &AheadBehind{Ahead: ahead, Behind: behind}
	case "stash":
		if n, err := strconv.Atoi(fields[2]); err == nil {
			summary.Stashes = n
		}
	}
}
