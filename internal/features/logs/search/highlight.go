package logs_search

import (
	"strings"
	"unicode"
)

const (
	markOpenTag  = "<mark>"
	markCloseTag = "</mark>"
)

// lineSegment is one tag or text run of a single line. Text segments carry
// a per-rune marked flag filled in during span selection.
type lineSegment struct {
	text   []rune
	isTag  bool
	marked []bool
}

// runeRef addresses one rune of one text segment from the flattened view.
type runeRef struct {
	segment int
	index   int
}

// HighlightText wraps the characters matched by the query in <mark> spans.
// Markup already present in the text passes through untouched, only text
// between tags is eligible for marking. The query must be fully consumed
// within a single line for that line to receive highlighting, lines where
// it cannot be are emitted unchanged. Adjacent matched characters share one
// span.
func HighlightText(text string, query string) string {
	if query == "" || text == "" {
		return text
	}

	pattern := lowerRunes(query)
	lines := strings.Split(text, "\n")
	highlighted := make([]string, 0, len(lines))

	for _, line := range lines {
		highlighted = append(highlighted, highlightLine(line, pattern))
	}

	return strings.Join(highlighted, "\n")
}

func highlightLine(line string, pattern []rune) string {
	segments := splitTagSegments(line)
	flat, refs := flattenTextRunes(segments)

	positions, ok := selectMatchSpans(flat, pattern)
	if !ok {
		return line
	}

	for _, position := range positions {
		ref := refs[position]
		segments[ref.segment].marked[ref.index] = true
	}

	return renderSegments(segments)
}

// splitTagSegments cuts a line into alternating text and tag segments. A
// "<" without a closing ">" swallows the rest of the line as one tag
// segment, matching how browsers treat a dangling open bracket.
func splitTagSegments(line string) []lineSegment {
	runes := []rune(line)
	segments := []lineSegment{}

	i := 0
	for i < len(runes) {
		if runes[i] == '<' {
			end := i
			for end < len(runes) && runes[end] != '>' {
				end++
			}

			if end == len(runes) {
				segments = append(segments, lineSegment{text: runes[i:], isTag: true})
				break
			}

			segments = append(segments, lineSegment{text: runes[i : end+1], isTag: true})
			i = end + 1
			continue
		}

		start := i
		for i < len(runes) && runes[i] != '<' {
			i++
		}

		segment := lineSegment{text: runes[start:i]}
		segment.marked = make([]bool, len(segment.text))
		segments = append(segments, segment)
	}

	return segments
}

// flattenTextRunes produces the lowercased concatenation of all text
// segments plus the back-references needed to mark the original runes.
func flattenTextRunes(segments []lineSegment) ([]rune, []runeRef) {
	flat := []rune{}
	refs := []runeRef{}

	for segmentIndex, segment := range segments {
		if segment.isTag {
			continue
		}

		for runeIndex, character := range segment.text {
			flat = append(flat, unicode.ToLower(character))
			refs = append(refs, runeRef{segment: segmentIndex, index: runeIndex})
		}
	}

	return flat, refs
}

// selectMatchSpans picks the flat positions to mark for the pattern. At
// each step the longest prefix of the remaining pattern that occurs
// verbatim in the remaining text wins, down to single characters. Returns
// ok=false when the pattern cannot be fully consumed, in which case no
// positions apply.
func selectMatchSpans(flat []rune, pattern []rune) ([]int, bool) {
	positions := []int{}
	searchFrom := 0
	remaining := pattern

	for len(remaining) > 0 {
		found := false

		for prefixLen := len(remaining); prefixLen >= 1; prefixLen-- {
			start := indexRunes(flat, remaining[:prefixLen], searchFrom)
			if start < 0 {
				continue
			}

			for position := start; position < start+prefixLen; position++ {
				positions = append(positions, position)
			}

			searchFrom = start + prefixLen
			remaining = remaining[prefixLen:]
			found = true
			break
		}

		if !found {
			return nil, false
		}
	}

	return positions, true
}

func indexRunes(text []rune, pattern []rune, from int) int {
	for start := from; start+len(pattern) <= len(text); start++ {
		matched := true
		for offset := range pattern {
			if text[start+offset] != pattern[offset] {
				matched = false
				break
			}
		}

		if matched {
			return start
		}
	}

	return -1
}

func renderSegments(segments []lineSegment) string {
	var builder strings.Builder

	for _, segment := range segments {
		if segment.isTag {
			builder.WriteString(string(segment.text))
			continue
		}

		for i, character := range segment.text {
			if segment.marked[i] && (i == 0 || !segment.marked[i-1]) {
				builder.WriteString(markOpenTag)
			}

			builder.WriteRune(character)

			if segment.marked[i] && (i == len(segment.text)-1 || !segment.marked[i+1]) {
				builder.WriteString(markCloseTag)
			}
		}
	}

	return builder.String()
}
