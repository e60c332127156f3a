package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"logweave/internal/config"
)

const cleanupInterval = 1 * time.Minute

// SessionCleanupService evicts sessions that have been idle longer than
// the configured TTL. Eviction goes through SessionService.DeleteSession so
// deletion listeners fire for expired sessions too.
type SessionCleanupService struct {
	sessionService    *SessionService
	sessionRepository *SessionRepository
	sessionTTL        time.Duration
	logger            *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (s *SessionCleanupService) StartWorkers() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("Starting session cleanup worker",
		slog.Duration("interval", cleanupInterval),
		slog.Duration("sessionTTL", s.sessionTTL))

	s.wg.Add(1)
	go s.cleanupWorker()
}

func (s *SessionCleanupService) ExecuteAllTasksForTest() error {
	return s.evictIdleSessions()
}

func (s *SessionCleanupService) cleanupWorker() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		if config.IsShouldShutdown() {
			s.logger.Info("Session cleanup worker shutting down due to shutdown signal")
			return
		}

		select {
		case <-s.ctx.Done():
			s.logger.Info("Session cleanup worker shutting down")
			return

		case <-ticker.C:
			if err := s.evictIdleSessions(); err != nil {
				s.logger.Error("Error during session cleanup", slog.String("error", err.Error()))
			}
		}
	}
}

func (s *SessionCleanupService) evictIdleSessions() error {
	cutoff := time.Now().UTC().Add(-s.sessionTTL)

	idleSessionIDs := s.sessionRepository.SessionIDsIdleSince(cutoff)
	if len(idleSessionIDs) == 0 {
		return nil
	}

	evicted := 0
	for _, sessionID := range idleSessionIDs {
		if err := s.sessionService.DeleteSession(sessionID); err != nil {
			s.logger.Error("Failed to evict idle session",
				slog.String("sessionId", sessionID.String()),
				slog.String("error", err.Error()))
			continue
		}
		evicted++
	}

	s.logger.Info("Session cleanup completed",
		slog.Int("idleSessions", len(idleSessionIDs)),
		slog.Int("evictedSessions", evicted))

	return nil
}
