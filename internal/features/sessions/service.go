package sessions

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	logs_core "logweave/internal/features/logs/core"
	logs_entities "logweave/internal/features/logs/entities"
	logs_parsing "logweave/internal/features/logs/parsing"
	logs_timeline "logweave/internal/features/logs/timeline"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionDeletionListener is notified before a session is removed so other
// features can release per-session resources (rate-limit buckets etc.).
type SessionDeletionListener interface {
	OnBeforeSessionDeletion(sessionID uuid.UUID) error
}

type SessionService struct {
	sessionRepository *SessionRepository
	secretKey         string
	sessionTTL        time.Duration
	logger            *slog.Logger

	sessionDeletionListeners []SessionDeletionListener
}

func (s *SessionService) AddSessionDeletionListener(listener SessionDeletionListener) {
	s.sessionDeletionListeners = append(s.sessionDeletionListeners, listener)
}

func (s *SessionService) CreateSession() (*CreateSessionResponseDTO, error) {
	now := time.Now().UTC()

	session := &Session{
		ID:            uuid.New(),
		CreatedAt:     now,
		LastActiveAt:  now,
		ClientEntries: []logs_parsing.ClientLogEntry{},
		ServerEntries: []logs_parsing.ServerLogEntry{},
		Timeline:      []logs_timeline.LogEvent{},
		EntityIndex:   logs_entities.BuildEntityIndex(nil),
		Filtered:      []logs_timeline.LogEvent{},
		Uploads:       []UploadRecord{},
	}

	s.sessionRepository.CreateSession(session)

	// The token expiry is the hard cap on session lifetime; the cleanup
	// worker evicts idle sessions earlier.
	expiresAt := now.Add(s.sessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": session.ID.String(),
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &CreateSessionResponseDTO{
		SessionID: session.ID,
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *SessionService) GetSessionFromToken(token string) (*Session, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token claims")
	}

	sessionIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	var session *Session
	err = s.sessionRepository.WithSession(sessionID, func(stored *Session) error {
		stored.LastActiveAt = time.Now().UTC()
		session = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *SessionService) GetSessionState(sessionID uuid.UUID) (*SessionStateResponseDTO, error) {
	var state *SessionStateResponseDTO

	err := s.sessionRepository.WithSession(sessionID, func(session *Session) error {
		state = newSessionStateDTO(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (s *SessionService) DeleteSession(sessionID uuid.UUID) error {
	for _, listener := range s.sessionDeletionListeners {
		if err := listener.OnBeforeSessionDeletion(sessionID); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	if !s.sessionRepository.DeleteSession(sessionID) {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorSessionNotFound,
			Message: "session not found",
		}
	}

	s.logger.Info("Session deleted", slog.String("sessionId", sessionID.String()))

	return nil
}

// ResetSession drops all accumulated state but keeps the session alive, so
// the same token can start over with fresh uploads.
func (s *SessionService) ResetSession(sessionID uuid.UUID) (*SessionStateResponseDTO, error) {
	var state *SessionStateResponseDTO

	err := s.sessionRepository.WithSession(sessionID, func(session *Session) error {
		session.ClientEntries = []logs_parsing.ClientLogEntry{}
		session.ServerEntries = []logs_parsing.ServerLogEntry{}
		session.Timeline = []logs_timeline.LogEvent{}
		session.EntityIndex = logs_entities.BuildEntityIndex(nil)
		session.Query = ""
		session.Filtered = []logs_timeline.LogEvent{}
		session.Cursor = 0
		session.Uploads = []UploadRecord{}
		session.Revision++

		state = newSessionStateDTO(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (s *SessionService) CountSessions() int {
	return s.sessionRepository.CountSessions()
}

func newSessionStateDTO(session *Session) *SessionStateResponseDTO {
	return &SessionStateResponseDTO{
		SessionID:    session.ID,
		CreatedAt:    session.CreatedAt,
		LastActiveAt: session.LastActiveAt,
		Revision:     session.Revision,
		EventCount:   len(session.Timeline),
		EntityCount:  len(session.EntityIndex.Entities),
		UploadCount:  len(session.Uploads),
		Query:        session.Query,
		Cursor:       session.Cursor,
		MatchCount:   len(session.Filtered),
	}
}
