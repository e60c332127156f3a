package logs_entities

import (
	"github.com/sahilm/fuzzy"
)

// FilterEntityIDs narrows ids to those fuzzy-matching query, best match
// first. An empty query returns ids unchanged so list endpoints can share
// one code path.
func FilterEntityIDs(ids []string, query string) []string {
	if query == "" {
		return ids
	}

	matches := fuzzy.Find(query, ids)

	filtered := make([]string, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, match.Str)
	}

	return filtered
}
