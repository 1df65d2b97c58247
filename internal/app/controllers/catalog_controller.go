package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/app/services"
	"github.com/jcalhoun/degreeplanner/internal/middleware"
	"github.com/jcalhoun/degreeplanner/internal/seed"
)

// CatalogController handles course catalog operations
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetAllCourses retrieves all available courses
// @Summary Get all courses
// @Description Retrieves the full course catalog
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CatalogController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.catalogService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourseByCode retrieves a specific course
// @Summary Get course details
// @Description Retrieves a specific course by its code
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code" example(BIBL101)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [get]
func (c *CatalogController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.catalogService.GetCourseByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetSampleData returns the built-in fallback catalog
// @Summary Get sample data
// @Description Returns the built-in sample courses and requirements used when no documents have been ingested
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SampleDataResponse} "Sample data"
// @Router /sample-data [get]
func (c *CatalogController) GetSampleData(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SampleDataResponse{
			Courses:      seed.SampleCourses(),
			Requirements: seed.SampleRequirements(),
		},
		Timestamp: time.Now(),
	})
}
