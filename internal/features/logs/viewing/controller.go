package logs_viewing

import (
	"net/http"

	logs_core "logweave/internal/features/logs/core"
	"logweave/internal/features/sessions"

	"github.com/gin-gonic/gin"
)

type ViewingController struct {
	viewingService *ViewingService
}

func (c *ViewingController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sessions/current/timeline", c.GetTimeline)
	router.PUT("/sessions/current/search", c.SetSearchQuery)
	router.POST("/sessions/current/search/next", c.NextMatch)
	router.POST("/sessions/current/search/prev", c.PrevMatch)
	router.GET("/sessions/current/entities", c.GetEntitySummary)
	router.GET("/sessions/current/entities/:entityId", c.GetEntityDetail)
}

// GetTimeline
// @Summary Get the unified timeline
// @Description Get the session's merged timeline, optionally narrowed by a fuzzy query. With render=html each message is HTML-escaped, identifiers become clickable spans and query matches are wrapped in mark tags.
// @Tags viewing
// @Produce json
// @Security BearerAuth
// @Param query query string false "Fuzzy search query"
// @Param render query string false "Render mode: html for markup-ready messages" Enums(html)
// @Success 200 {object} TimelineResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/current/timeline [get]
func (c *ViewingController) GetTimeline(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	response, err := c.viewingService.GetTimeline(
		session.ID, ctx.Query("query"), ctx.Query("render"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SetSearchQuery
// @Summary Set the active search query
// @Description Store the query, recompute the match set against the current timeline and reset the cursor to the first match
// @Tags viewing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SearchRequestDTO true "Search query (empty string clears the search)"
// @Success 200 {object} SearchStateResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/current/search [put]
func (c *ViewingController) SetSearchQuery(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	var request SearchRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.viewingService.SetSearchQuery(session.ID, request.Query)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// NextMatch
// @Summary Move to the next match
// @Description Advance the match cursor with wraparound and return the event id to scroll to
// @Tags viewing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SearchStateResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/current/search/next [post]
func (c *ViewingController) NextMatch(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	response, err := c.viewingService.NextMatch(session.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// PrevMatch
// @Summary Move to the previous match
// @Description Retreat the match cursor with wraparound and return the event id to scroll to
// @Tags viewing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SearchStateResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/current/search/prev [post]
func (c *ViewingController) PrevMatch(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	response, err := c.viewingService.PrevMatch(session.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetEntitySummary
// @Summary Get the entity index summary
// @Description Get per-kind identifier lists, optionally narrowed by a ranked fuzzy picker query
// @Tags viewing
// @Produce json
// @Security BearerAuth
// @Param query query string false "Picker filter query"
// @Success 200 {object} EntitySummaryResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/current/entities [get]
func (c *ViewingController) GetEntitySummary(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	response, err := c.viewingService.GetEntitySummary(session.ID, ctx.Query("query"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetEntityDetail
// @Summary Get one entity with its events
// @Description Get the aggregate record for one identifier together with every event observing it, rendered through the timeline pipeline when render=html
// @Tags viewing
// @Produce json
// @Security BearerAuth
// @Param entityId path string true "Identifier as extracted from the logs"
// @Param query query string false "Highlight query for rendered events"
// @Param render query string false "Render mode: html for markup-ready messages" Enums(html)
// @Success 200 {object} EntityDetailResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session or entity not found"
// @Router /sessions/current/entities/{entityId} [get]
func (c *ViewingController) GetEntityDetail(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	response, err := c.viewingService.GetEntityDetail(
		session.ID, ctx.Param("entityId"), ctx.Query("query"), ctx.Query("render"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *ViewingController) handleError(ctx *gin.Context, err error) {
	if validationErr, ok := err.(*logs_core.ValidationError); ok {
		statusCode := http.StatusBadRequest
		if validationErr.Code == logs_core.ErrorSessionNotFound ||
			validationErr.Code == logs_core.ErrorEntityNotFound {
			statusCode = http.StatusNotFound
		}

		ctx.JSON(statusCode, gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process viewing request"})
}
