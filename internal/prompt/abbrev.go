package prompt

import (
	"regexp"
	"strings"
)

// segmentPrefix matches the leading non-word run plus one word character of
// a path segment. Underscore counts as a word character, so
// "private_dot_config" abbreviates to "p" while "._shares" keeps "._".
var segmentPrefix = regexp.MustCompile(`^\W*\w`)

// Abbreviate shortens a path for display. The last keep segments are kept
// verbatim; every earlier segment collapses to its segmentPrefix match.
// keep >= the segment count leaves the path untouched.
func Abbreviate(path string, keep int) string {
	segments := strings.Split(path, "/")
	limit := len(segments) - keep
	if limit < 0 {
		limit = 0
	}
	for i := 0; i < limit; i++ {
		segments[i] = abbreviateSegment(segments[i])
	}
	return strings.Join(segments, "/")
}

// abbreviateSegment returns the anchored prefix match, or the segment
// unchanged when it contains no word character.
func abbreviateSegment(name string) string {
	if m := segmentPrefix.FindString(name); m != "" {
		return m
	}
	return name
}
