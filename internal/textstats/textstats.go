// Package textstats derives cheap local features from message text.
package textstats

import (
	"strings"
	"unicode/utf8"
)

// Stats holds basic size features for a piece of text.
type Stats struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// Collect computes byte, rune, word, and line counts for s.
func Collect(s string) Stats {
	return Stats{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
		Lines: countLines(s),
	}
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of newlines.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}
