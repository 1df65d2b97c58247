package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jcalhoun/degreeplanner/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	requirementController *controllers.RequirementController,
	progressController *controllers.ProgressController,
	planController *controllers.PlanController,
	ingestController *controllers.IngestController,
) {
	// Root and liveness endpoints stay outside the versioned group
	router.GET("/", healthController.Root)
	router.GET("/health", healthController.Health)

	// API version group
	v1 := router.Group("/api/v1")

	// Catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.GetAllCourses)
		courses.GET("/:code", catalogController.GetCourseByCode)
	}
	v1.GET("/sample-data", catalogController.GetSampleData)

	// Requirement routes
	v1.GET("/requirements", requirementController.GetAllRequirements)

	// Progress and schedule computations
	v1.POST("/progress", progressController.ComputeProgress)
	v1.POST("/schedule", progressController.ComputeSchedule)

	// Degree plan routes
	plans := v1.Group("/plans")
	{
		plans.GET("", planController.ListPlans)
		plans.POST("", planController.SavePlan)
		plans.GET("/:studentName", planController.GetPlan)
	}

	// Ingestion routes
	v1.POST("/parse-rtf", ingestController.ParseDocument)
	v1.POST("/parse-rtf-batch", ingestController.ParseDocumentBatch)
	v1.GET("/parse-status", ingestController.ParseStatus)
	v1.POST("/reload-data", ingestController.ReloadData)

	// Swagger routes are registered separately via SetupSwagger
}
