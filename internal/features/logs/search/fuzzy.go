package logs_search

import (
	"strings"
	"unicode"
)

// FuzzyMatch reports whether every pattern character appears in the text in
// order, case-insensitively. Characters do not have to be consecutive but
// the whole pattern must be satisfied within a single newline-separated
// line. An empty pattern matches any text.
func FuzzyMatch(text string, pattern string) bool {
	if pattern == "" {
		return true
	}

	patternRunes := lowerRunes(pattern)

	for _, line := range strings.Split(text, "\n") {
		if lineContainsSubsequence(lowerRunes(line), patternRunes) {
			return true
		}
	}

	return false
}

func lineContainsSubsequence(line []rune, pattern []rune) bool {
	next := 0

	for _, character := range line {
		if character != pattern[next] {
			continue
		}

		next++
		if next == len(pattern) {
			return true
		}
	}

	return false
}

func lowerRunes(text string) []rune {
	runes := []rune(text)
	for i, character := range runes {
		runes[i] = unicode.ToLower(character)
	}

	return runes
}
