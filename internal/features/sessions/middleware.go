package sessions

import (
	"net/http"

	logs_core "logweave/internal/features/logs/core"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session JWT and adds the session to context
func AuthMiddleware(sessionService *SessionService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token required",
				"code":  logs_core.ErrorInvalidToken,
			})
			ctx.Abort()
			return
		}

		// Remove "Bearer " prefix if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		session, err := sessionService.GetSessionFromToken(token)
		if err != nil {
			// A well-signed token whose session is gone is not an auth
			// failure: the session was evicted or deleted.
			if validationErr, ok := err.(*logs_core.ValidationError); ok &&
				validationErr.Code == logs_core.ErrorSessionNotFound {
				ctx.JSON(http.StatusNotFound, gin.H{
					"error": validationErr.Message,
					"code":  validationErr.Code,
				})
				ctx.Abort()
				return
			}

			ctx.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
				"code":  logs_core.ErrorInvalidToken,
			})
			ctx.Abort()
			return
		}

		ctx.Set("session", session)
		ctx.Next()
	}
}

// GetSessionFromContext extracts the authenticated session from gin context.
// Handlers should only read the immutable ID from it and go through the
// repository for everything else.
func GetSessionFromContext(ctx *gin.Context) (*Session, bool) {
	sessionInterface, exists := ctx.Get("session")
	if !exists {
		return nil, false
	}

	session, ok := sessionInterface.(*Session)

	return session, ok
}
