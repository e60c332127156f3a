package logs_search

import (
	logs_timeline "logweave/internal/features/logs/timeline"
)

// SearchTimeline filters events to those whose message, module or level
// fuzzy-matches the query, preserving timeline order. An empty query
// returns the input unchanged.
func SearchTimeline(events []logs_timeline.LogEvent, query string) []logs_timeline.LogEvent {
	if query == "" {
		return events
	}

	filtered := make([]logs_timeline.LogEvent, 0, len(events))

	for _, event := range events {
		if FuzzyMatch(event.Message, query) ||
			FuzzyMatch(event.Module, query) ||
			FuzzyMatch(event.Level, query) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}
