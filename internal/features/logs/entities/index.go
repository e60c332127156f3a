package logs_entities

import (
	logs_timeline "logweave/internal/features/logs/timeline"
)

// EntityInfo aggregates every observation of one identifier across the
// timeline. Events stay in first-observation order.
type EntityInfo struct {
	ID         string                   `json:"id"`
	Type       EntityType               `json:"type"`
	FirstSeen  int64                    `json:"firstSeen"`
	LastSeen   int64                    `json:"lastSeen"`
	EventCount int                      `json:"eventCount"`
	Events     []logs_timeline.LogEvent `json:"-"`
}

// EntityIndex maps every observed identifier to its aggregate record.
// Every id in ByType appears exactly once in Entities and vice versa. The
// index is rebuilt wholesale on each timeline change, never patched.
type EntityIndex struct {
	Entities map[string]*EntityInfo  `json:"entities"`
	ByType   map[EntityType][]string `json:"byType"`
}

// BuildEntityIndex walks the events in timeline order and accumulates one
// record per identifier. The kind stored at first observation wins: later
// sightings under a different classification only extend the record, they
// never reassign it.
func BuildEntityIndex(events []logs_timeline.LogEvent) *EntityIndex {
	index := &EntityIndex{
		Entities: map[string]*EntityInfo{},
		ByType: map[EntityType][]string{
			EntityTypeDocID:   {},
			EntityTypeCharmID: {},
			EntityTypeSpaceID: {},
		},
	}

	for _, event := range events {
		entities := ExtractEntities(event.Message)
		for _, id := range entities.DocIDs {
			index.observe(id, EntityTypeDocID, event)
		}
		for _, id := range entities.CharmIDs {
			index.observe(id, EntityTypeCharmID, event)
		}
		for _, id := range entities.SpaceIDs {
			index.observe(id, EntityTypeSpaceID, event)
		}
	}

	return index
}

func (index *EntityIndex) observe(id string, kind EntityType, event logs_timeline.LogEvent) {
	info, exists := index.Entities[id]
	if !exists {
		info = &EntityInfo{
			ID:        id,
			Type:      kind,
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		index.Entities[id] = info
		index.ByType[kind] = append(index.ByType[kind], id)
	}

	if event.Timestamp < info.FirstSeen {
		info.FirstSeen = event.Timestamp
	}
	if event.Timestamp > info.LastSeen {
		info.LastSeen = event.Timestamp
	}

	info.Events = append(info.Events, event)
	info.EventCount = len(info.Events)
}
