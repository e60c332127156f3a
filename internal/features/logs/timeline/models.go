package logs_timeline

import (
	"github.com/google/uuid"
)

type LogSource string

const (
	LogSourceClient LogSource = "client"
	LogSourceServer LogSource = "server"
)

// LogEvent is the normalized unit of the unified timeline. Events are
// immutable after mapping and replaced wholesale on every rebuild, so ids
// regenerate per rebuild. Raw keeps the originating parsed entry for
// re-export and debugging and stays out of JSON responses.
type LogEvent struct {
	ID        uuid.UUID `json:"id"`
	Timestamp int64     `json:"timestamp"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	Source    LogSource `json:"source"`
	Raw       any       `json:"-"`
}
