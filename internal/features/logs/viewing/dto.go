package logs_viewing

import (
	logs_entities "logweave/internal/features/logs/entities"
	logs_timeline "logweave/internal/features/logs/timeline"

	"github.com/google/uuid"
)

type TimelineEventDTO struct {
	ID        uuid.UUID               `json:"id"`
	Timestamp int64                   `json:"timestamp"`
	Level     string                  `json:"level"`
	Module    string                  `json:"module"`
	Message   string                  `json:"message"`
	Source    logs_timeline.LogSource `json:"source"`
}

type TimelineResponseDTO struct {
	Events   []TimelineEventDTO `json:"events"`
	Total    int                `json:"total"`
	Query    string             `json:"query"`
	Revision int                `json:"revision"`
}

type SearchRequestDTO struct {
	Query string `json:"query"`
}

// SearchStateResponseDTO reports the navigation state after a search or
// cursor move. EventID is the event under the cursor, the client's
// scroll-to target; empty when there are no matches.
type SearchStateResponseDTO struct {
	Query      string `json:"query"`
	Cursor     int    `json:"cursor"`
	MatchCount int    `json:"matchCount"`
	EventID    string `json:"eventId"`
}

type EntityGroupDTO struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

type EntitySummaryResponseDTO struct {
	DocIDs   EntityGroupDTO `json:"docIds"`
	CharmIDs EntityGroupDTO `json:"charmIds"`
	SpaceIDs EntityGroupDTO `json:"spaceIds"`
	Total    int            `json:"total"`
}

type EntityDetailResponseDTO struct {
	Entity *logs_entities.EntityInfo `json:"entity"`
	Events []TimelineEventDTO        `json:"events"`
}
