package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
)

// HealthController serves liveness and root endpoints
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Root identifies the API
// @Summary API root
// @Description Returns the API name and status
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "API is running"
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Degree Planner API is running"},
		Timestamp: time.Now(),
	})
}

// Health reports process liveness
// @Summary Health check
// @Description Reports whether the API process is healthy
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Healthy"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "healthy"},
		Timestamp: time.Now(),
	})
}
