package sessions

import (
	"time"

	logs_entities "logweave/internal/features/logs/entities"
	logs_parsing "logweave/internal/features/logs/parsing"
	logs_timeline "logweave/internal/features/logs/timeline"

	"github.com/google/uuid"
)

// Session carries all per-viewer state: the accumulated source entries, the
// derived timeline and entity index, the active search and the upload
// history. Every mutation happens under the repository slot lock; derived
// slices are replaced wholesale on rebuild, never edited in place.
type Session struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`

	// Revision increments on every state change so caches keyed by it
	// become unreachable instead of needing invalidation.
	Revision int `json:"revision"`

	ClientEntries []logs_parsing.ClientLogEntry `json:"-"`
	ServerEntries []logs_parsing.ServerLogEntry `json:"-"`
	Timeline      []logs_timeline.LogEvent      `json:"-"`
	EntityIndex   *logs_entities.EntityIndex    `json:"-"`

	Query    string                   `json:"query"`
	Filtered []logs_timeline.LogEvent `json:"-"`
	Cursor   int                      `json:"cursor"`

	Uploads []UploadRecord `json:"uploads"`
}

type UploadRecord struct {
	ID         uuid.UUID              `json:"id"`
	FileName   string                 `json:"fileName"`
	SizeBytes  int64                  `json:"sizeBytes"`
	Format     logs_parsing.LogFormat `json:"format"`
	EntryCount int                    `json:"entryCount"`
	UploadedAt time.Time              `json:"uploadedAt"`
}
