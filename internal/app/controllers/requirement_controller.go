package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/app/services"
	"github.com/jcalhoun/degreeplanner/internal/middleware"
)

// RequirementController handles degree requirement operations
type RequirementController struct {
	requirementService services.RequirementService
}

// NewRequirementController creates a new RequirementController
func NewRequirementController(requirementService services.RequirementService) *RequirementController {
	return &RequirementController{
		requirementService: requirementService,
	}
}

// GetAllRequirements retrieves the degree requirement tree
// @Summary Get all requirements
// @Description Retrieves every degree requirement with course lists and one level of sub-requirements
// @Tags requirements
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Requirement} "Requirements retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requirements [get]
func (c *RequirementController) GetAllRequirements(ctx *gin.Context) {
	requirements, err := c.requirementService.GetAllRequirements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requirements,
		Timestamp: time.Now(),
	})
}
