package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.GetHealth)
}

// GetHealth
// @Summary Get service health
// @Description Returns service status together with host memory, CPU, uptime and live session statistics
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponseDTO
// @Failure 500 {object} map[string]interface{}
// @Router /system/health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	health, err := c.healthcheckService.GetHealth()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, health)
}
