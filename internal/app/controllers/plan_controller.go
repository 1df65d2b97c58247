package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/app/services"
	"github.com/jcalhoun/degreeplanner/internal/middleware"
)

// PlanController handles degree plan persistence
type PlanController struct {
	planService services.PlanService
}

// NewPlanController creates a new PlanController
func NewPlanController(planService services.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// SavePlan stores a student's degree plan
// @Summary Save a degree plan
// @Description Stores a degree plan keyed by student name, replacing any previous plan. Total credits are recomputed from the stored catalog.
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body models.DegreePlan true "Degree plan"
// @Success 200 {object} dto.APIResponse{data=models.DegreePlan} "Plan saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid plan payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [post]
func (c *PlanController) SavePlan(ctx *gin.Context) {
	var plan models.DegreePlan
	if err := ctx.ShouldBindJSON(&plan); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid plan payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.planService.SavePlan(ctx, &plan); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// SavePlan fills in the recomputed credit total.
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}

// GetPlan retrieves a stored degree plan
// @Summary Get a degree plan
// @Description Retrieves the stored degree plan for a student
// @Tags plans
// @Accept json
// @Produce json
// @Param studentName path string true "Student name"
// @Success 200 {object} dto.APIResponse{data=models.DegreePlan} "Plan retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{studentName} [get]
func (c *PlanController) GetPlan(ctx *gin.Context) {
	plan, err := c.planService.GetPlan(ctx, ctx.Param("studentName"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}

// ListPlans lists students with stored plans
// @Summary List stored plans
// @Description Lists the student names that have a stored degree plan
// @Tags plans
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Student names retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [get]
func (c *PlanController) ListPlans(ctx *gin.Context) {
	names, err := c.planService.ListPlans(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      names,
		Timestamp: time.Now(),
	})
}
