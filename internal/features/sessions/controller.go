package sessions

import (
	"net/http"

	logs_core "logweave/internal/features/logs/core"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type SessionController struct {
	sessionService *SessionService
	createLimiter  *rate.Limiter
}

func (c *SessionController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sessions", c.CreateSession)
}

func (c *SessionController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/sessions/current", c.GetCurrentSession)
	router.DELETE("/sessions/current", c.DeleteCurrentSession)
	router.POST("/sessions/current/reset", c.ResetCurrentSession)
}

func (c *SessionController) SetCreateLimiter(limiter *rate.Limiter) {
	c.createLimiter = limiter
}

// CreateSession
// @Summary Create a viewing session
// @Description Create an anonymous session and return its access token
// @Tags sessions
// @Produce json
// @Success 200 {object} CreateSessionResponseDTO
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	// We use rate limiter to prevent anonymous session flooding
	if !c.createLimiter.Allow() {
		ctx.JSON(
			http.StatusTooManyRequests,
			gin.H{"error": "Rate limit exceeded. Please try again later."},
		)
		return
	}

	response, err := c.sessionService.CreateSession()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCurrentSession
// @Summary Get current session state
// @Description Get metadata and counters for the authenticated session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionStateResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/current [get]
func (c *SessionController) GetCurrentSession(ctx *gin.Context) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	state, err := c.sessionService.GetSessionState(session.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// DeleteCurrentSession
// @Summary Delete current session
// @Description Drop the authenticated session and all of its state
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/current [delete]
func (c *SessionController) DeleteCurrentSession(ctx *gin.Context) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	if err := c.sessionService.DeleteSession(session.ID); err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}

// ResetCurrentSession
// @Summary Reset current session
// @Description Clear uploads, timeline, entities and search state; keep the session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionStateResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/current/reset [post]
func (c *SessionController) ResetCurrentSession(ctx *gin.Context) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	state, err := c.sessionService.ResetSession(session.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, state)
}

func (c *SessionController) handleError(ctx *gin.Context, err error) {
	if validationErr, ok := err.(*logs_core.ValidationError); ok {
		statusCode := http.StatusBadRequest
		if validationErr.Code == logs_core.ErrorSessionNotFound {
			statusCode = http.StatusNotFound
		}

		ctx.JSON(statusCode, gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process session request"})
}
