package logs_entities

import (
	"testing"

	logs_timeline "logweave/internal/features/logs/timeline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_BuildEntityIndex_IDAcrossSeveralEvents_AggregatesSeenRangeAndCount(t *testing.T) {
	events := []logs_timeline.LogEvent{
		makeEntityEvent(100, "Stored doc "+testCIDAlpha),
		makeEntityEvent(500, "Replicated "+testCIDAlpha+" to peer"),
	}

	index := BuildEntityIndex(events)

	info := index.Entities[testCIDAlpha]
	assert.NotNil(t, info)
	assert.Equal(t, int64(100), info.FirstSeen)
	assert.Equal(t, int64(500), info.LastSeen)
	assert.Equal(t, 2, info.EventCount)
	assert.Len(t, info.Events, 2)
	assert.Equal(t, events[0].ID, info.Events[0].ID)
}

func Test_BuildEntityIndex_LaterSightingUnderOtherKind_KeepsFirstKind(t *testing.T) {
	events := []logs_timeline.LogEvent{
		makeEntityEvent(100, "Stored doc "+testCIDAlpha),
		makeEntityEvent(200, "Running charm "+testCIDAlpha),
	}

	index := BuildEntityIndex(events)

	info := index.Entities[testCIDAlpha]
	assert.Equal(t, EntityTypeDocID, info.Type)
	assert.Equal(t, 2, info.EventCount)
	assert.Equal(t, []string{testCIDAlpha}, index.ByType[EntityTypeDocID])
	assert.Empty(t, index.ByType[EntityTypeCharmID])
}

func Test_BuildEntityIndex_MixedKinds_PopulatesByTypeBuckets(t *testing.T) {
	events := []logs_timeline.LogEvent{
		makeEntityEvent(100, "charm "+testCIDBeta+" started"),
		makeEntityEvent(200, "wrote "+testCIDAlpha+" into "+testSpaceDID),
	}

	index := BuildEntityIndex(events)

	assert.Equal(t, []string{testCIDBeta}, index.ByType[EntityTypeCharmID])
	assert.Equal(t, []string{testCIDAlpha}, index.ByType[EntityTypeDocID])
	assert.Equal(t, []string{testSpaceDID}, index.ByType[EntityTypeSpaceID])
	assert.Len(t, index.Entities, 3)
}

func Test_BuildEntityIndex_UnorderedTimestamps_SeenRangeStaysMinMax(t *testing.T) {
	events := []logs_timeline.LogEvent{
		makeEntityEvent(500, "late sighting of "+testCIDAlpha),
		makeEntityEvent(100, "early sighting of "+testCIDAlpha),
	}

	index := BuildEntityIndex(events)

	info := index.Entities[testCIDAlpha]
	assert.Equal(t, int64(100), info.FirstSeen)
	assert.Equal(t, int64(500), info.LastSeen)
}

func Test_BuildEntityIndex_IDRepeatedWithinOneEvent_CountedOnce(t *testing.T) {
	events := []logs_timeline.LogEvent{
		makeEntityEvent(100, testCIDAlpha+" equals "+testCIDAlpha),
	}

	index := BuildEntityIndex(events)

	assert.Equal(t, 1, index.Entities[testCIDAlpha].EventCount)
}

func Test_BuildEntityIndex_NoEvents_ReturnsEmptyBucketsForAllKinds(t *testing.T) {
	index := BuildEntityIndex([]logs_timeline.LogEvent{})

	assert.Empty(t, index.Entities)
	assert.NotNil(t, index.ByType[EntityTypeDocID])
	assert.NotNil(t, index.ByType[EntityTypeCharmID])
	assert.NotNil(t, index.ByType[EntityTypeSpaceID])
}

func makeEntityEvent(timestamp int64, message string) logs_timeline.LogEvent {
	return logs_timeline.LogEvent{
		ID:        uuid.New(),
		Timestamp: timestamp,
		Level:     "info",
		Module:    "storage",
		Message:   message,
		Source:    logs_timeline.LogSourceClient,
	}
}
