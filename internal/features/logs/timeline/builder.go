package logs_timeline

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	logs_parsing "logweave/internal/features/logs/parsing"
)

func FromClientEntry(entry logs_parsing.ClientLogEntry) LogEvent {
	return LogEvent{
		ID:        uuid.New(),
		Timestamp: entry.Timestamp,
		Level:     entry.Level,
		Module:    entry.Module,
		Message:   joinMessageParts(entry.Messages),
		Source:    LogSourceClient,
		Raw:       entry,
	}
}

func FromServerEntry(entry logs_parsing.ServerLogEntry) LogEvent {
	return LogEvent{
		ID:        uuid.New(),
		Timestamp: entry.Timestamp,
		Level:     entry.Level,
		Module:    entry.Module,
		Message:   entry.Message,
		Source:    LogSourceServer,
		Raw:       entry,
	}
}

// BuildTimeline merges both entry kinds into one sequence ordered by
// timestamp ascending. The sort must stay stable: equal timestamps keep
// their input order, with client entries mapped first, so ties render
// client before server deterministically.
func BuildTimeline(
	clientEntries []logs_parsing.ClientLogEntry,
	serverEntries []logs_parsing.ServerLogEntry,
) []LogEvent {
	events := make([]LogEvent, 0, len(clientEntries)+len(serverEntries))
	for _, entry := range clientEntries {
		events = append(events, FromClientEntry(entry))
	}
	for _, entry := range serverEntries {
		events = append(events, FromServerEntry(entry))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})

	return events
}

// joinMessageParts renders every message part to its display string and
// joins them with single spaces. A null part renders empty, so nulls leave
// consecutive spaces behind.
func joinMessageParts(parts []any) string {
	rendered := make([]string, len(parts))
	for i, part := range parts {
		rendered[i] = formatMessagePart(part)
	}

	return strings.Join(rendered, " ")
}

// formatMessagePart canonicalizes one heterogeneous message value: strings
// verbatim, numbers as written in the source, null empty, everything else
// as canonical JSON text.
func formatMessagePart(part any) string {
	switch value := part.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(data)
	}
}
