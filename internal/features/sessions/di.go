package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"logweave/internal/config"
	"logweave/internal/util/logger"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var sessionRepository = &SessionRepository{
	slots: map[uuid.UUID]*sessionSlot{},
}

var sessionService = &SessionService{
	sessionRepository: sessionRepository,
	secretKey:         resolveSecretKey(),
	sessionTTL:        time.Duration(config.GetEnv().SessionTTLMinutes) * time.Minute,
	logger:            logger.GetLogger(),
}

var sessionController = &SessionController{
	sessionService: sessionService,
	createLimiter:  rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
}

var sessionCleanupService = &SessionCleanupService{
	sessionService:    sessionService,
	sessionRepository: sessionRepository,
	sessionTTL:        time.Duration(config.GetEnv().SessionTTLMinutes) * time.Minute,
	logger:            logger.GetLogger(),
}

func GetSessionRepository() *SessionRepository {
	return sessionRepository
}

func GetSessionService() *SessionService {
	return sessionService
}

func GetSessionController() *SessionController {
	return sessionController
}

func GetSessionCleanupService() *SessionCleanupService {
	return sessionCleanupService
}

// resolveSecretKey prefers the configured signing secret and falls back to
// a random per-process one. Tokens then stop working across restarts, which
// is acceptable for anonymous sessions backed by in-memory state anyway.
func resolveSecretKey() string {
	if key := config.GetEnv().JwtSecretKey; key != "" {
		return key
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to generate session secret key: " + err.Error())
	}

	return hex.EncodeToString(buf)
}
