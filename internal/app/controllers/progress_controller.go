package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/app/services"
	"github.com/jcalhoun/degreeplanner/internal/middleware"
	"github.com/jcalhoun/degreeplanner/internal/planner"
)

// ProgressController exposes the progress and schedule computations. Both
// endpoints are stateless: the client sends its selection maps and gets
// the reconciled rollups back.
type ProgressController struct {
	progressService services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// ComputeProgress reconciles a selection state against the requirements
// @Summary Compute requirement progress
// @Description Computes planned and completed percentages for every requirement, plus planned and completed credit totals
// @Tags progress
// @Accept json
// @Produce json
// @Param selection body dto.ProgressRequest true "Planned and completed course selections"
// @Success 200 {object} dto.APIResponse{data=dto.ProgressResponse} "Progress computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid selection payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress [post]
func (c *ProgressController) ComputeProgress(ctx *gin.Context) {
	var req dto.ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	selection := planner.SelectionState{Planned: req.Planned, Completed: req.Completed}
	progress, err := c.progressService.ComputeProgress(ctx, selection)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      progress,
		Timestamp: time.Now(),
	})
}

// ComputeSchedule groups planned courses by semester
// @Summary Compute semester schedule
// @Description Groups the planned courses into semester buckets with per-bucket credit totals
// @Tags progress
// @Accept json
// @Produce json
// @Param selection body dto.ScheduleRequest true "Planned course selections"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid selection payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [post]
func (c *ProgressController) ComputeSchedule(ctx *gin.Context) {
	var req dto.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.progressService.ComputeSchedule(ctx, req.Planned, req.Codes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}
