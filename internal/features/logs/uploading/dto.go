package logs_uploading

import (
	logs_parsing "logweave/internal/features/logs/parsing"
	"logweave/internal/features/sessions"
)

type UploadedFileResultDTO struct {
	FileName   string                 `json:"fileName"`
	Format     logs_parsing.LogFormat `json:"format"`
	EntryCount int                    `json:"entryCount"`
	SizeBytes  int64                  `json:"sizeBytes"`
}

// UploadResponseDTO reports what each file contributed plus the session
// counters after the rebuild, so clients can refresh without a second call.
type UploadResponseDTO struct {
	Files       []UploadedFileResultDTO `json:"files"`
	Revision    int                     `json:"revision"`
	EventCount  int                     `json:"eventCount"`
	EntityCount int                     `json:"entityCount"`
	MatchCount  int                     `json:"matchCount"`
	Cursor      int                     `json:"cursor"`
}

type UploadHistoryResponseDTO struct {
	Uploads []sessions.UploadRecord `json:"uploads"`
	Total   int                     `json:"total"`
}
