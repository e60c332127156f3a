package logs_uploading

import (
	"net/http"

	logs_core "logweave/internal/features/logs/core"
	logs_parsing "logweave/internal/features/logs/parsing"
	"logweave/internal/features/sessions"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	uploadService *UploadService
}

func (c *UploadController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sessions/current/uploads", c.UploadFiles)
	router.GET("/sessions/current/uploads", c.GetUploadHistory)
}

// UploadFiles
// @Summary Upload log files
// @Description Upload one or more log files into the session. Each file is format-detected independently; any undetectable file rejects the whole batch and leaves the session untouched.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Log files (client JSON export or server text log)"
// @Success 200 {object} UploadResponseDTO
// @Failure 400 {object} map[string]string "Invalid files or unrecognized log format"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 429 {object} map[string]string "Upload rate limit exceeded"
// @Failure 503 {object} map[string]string "Server under memory pressure"
// @Router /sessions/current/uploads [post]
func (c *UploadController) UploadFiles(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	response, err := c.uploadService.IngestFiles(session.ID, form.File["files"])
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUploadHistory
// @Summary Get upload history
// @Description List the session's uploads, newest first
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UploadHistoryResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/current/uploads [get]
func (c *UploadController) GetUploadHistory(ctx *gin.Context) {
	session, ok := sessions.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session not authenticated"})
		return
	}

	response, err := c.uploadService.GetUploadHistory(session.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *UploadController) handleError(ctx *gin.Context, err error) {
	if validationErr, ok := err.(*logs_core.ValidationError); ok {
		statusCode := c.getStatusCodeForValidationError(validationErr.Code)

		if validationErr.Code == logs_core.ErrorTooManyUploads {
			ctx.Header("Retry-After", "1") // Bucket refills one upload per second
		}

		ctx.JSON(statusCode, gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
		})
		return
	}

	if parseErr, ok := err.(*logs_parsing.ParseError); ok {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": parseErr.Message,
			"code":  parseErr.Code,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
}

func (c *UploadController) getStatusCodeForValidationError(errorCode string) int {
	switch errorCode {
	case logs_core.ErrorSessionNotFound:
		return http.StatusNotFound
	case logs_core.ErrorTooManyUploads:
		return http.StatusTooManyRequests
	case logs_core.ErrorSystemOverload:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}
