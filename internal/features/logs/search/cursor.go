package logs_search

// Cursor transitions for match navigation. The cursor indexes into the
// currently filtered event list and wraps around at both ends.

// AdvanceCursor moves to the next match, wrapping to the first past the
// last. With no matches the cursor stays at zero.
func AdvanceCursor(cursor int, matchCount int) int {
	if matchCount <= 0 {
		return 0
	}

	return (cursor + 1) % matchCount
}

// RetreatCursor moves to the previous match, wrapping to the last from the
// first.
func RetreatCursor(cursor int, matchCount int) int {
	if matchCount <= 0 {
		return 0
	}

	if cursor <= 0 || cursor >= matchCount {
		return matchCount - 1
	}

	return cursor - 1
}

// ClampCursor keeps a cursor that is still valid for the match count and
// falls back to the first match otherwise. Used after the filtered list
// shrinks underneath an existing cursor.
func ClampCursor(cursor int, matchCount int) int {
	if cursor < 0 || cursor >= matchCount {
		return 0
	}

	return cursor
}
