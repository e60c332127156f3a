package sessions

import (
	"sync"
	"time"

	logs_core "logweave/internal/features/logs/core"

	"github.com/google/uuid"
)

// sessionSlot pairs a session with the mutex serializing its mutations.
// The slot mutex is what guarantees at most one timeline/index rebuild per
// session at a time.
type sessionSlot struct {
	mu      sync.Mutex
	session *Session
}

type SessionRepository struct {
	mu    sync.RWMutex
	slots map[uuid.UUID]*sessionSlot
}

func (r *SessionRepository) CreateSession(session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[session.ID] = &sessionSlot{session: session}
}

// WithSession runs fn with exclusive access to the session state. Callers
// must not retain references to mutable slices beyond fn; snapshots of
// rebuilt slices are safe because rebuilds replace rather than edit them.
func (r *SessionRepository) WithSession(sessionID uuid.UUID, fn func(session *Session) error) error {
	slot, exists := r.slot(sessionID)
	if !exists {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorSessionNotFound,
			Message: "session not found",
		}
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return fn(slot.session)
}

func (r *SessionRepository) DeleteSession(sessionID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.slots[sessionID]
	if exists {
		delete(r.slots, sessionID)
	}

	return exists
}

func (r *SessionRepository) CountSessions() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.slots)
}

// SessionIDsIdleSince returns the ids of sessions whose last activity is
// before the cutoff.
func (r *SessionRepository) SessionIDsIdleSince(cutoff time.Time) []uuid.UUID {
	r.mu.RLock()
	slots := make([]*sessionSlot, 0, len(r.slots))
	for _, slot := range r.slots {
		slots = append(slots, slot)
	}
	r.mu.RUnlock()

	idle := []uuid.UUID{}
	for _, slot := range slots {
		slot.mu.Lock()
		if slot.session.LastActiveAt.Before(cutoff) {
			idle = append(idle, slot.session.ID)
		}
		slot.mu.Unlock()
	}

	return idle
}

func (r *SessionRepository) slot(sessionID uuid.UUID) (*sessionSlot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, exists := r.slots[sessionID]
	return slot, exists
}
