package sessions

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponseDTO struct {
	SessionID uuid.UUID `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SessionStateResponseDTO struct {
	SessionID    uuid.UUID `json:"sessionId"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`
	Revision     int       `json:"revision"`
	EventCount   int       `json:"eventCount"`
	EntityCount  int       `json:"entityCount"`
	UploadCount  int       `json:"uploadCount"`
	Query        string    `json:"query"`
	Cursor       int       `json:"cursor"`
	MatchCount   int       `json:"matchCount"`
}
