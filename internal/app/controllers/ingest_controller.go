package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/app/services"
	"github.com/jcalhoun/degreeplanner/internal/middleware"
	"github.com/jcalhoun/degreeplanner/internal/pkg/apperrors"
)

// IngestController handles catalog document parsing endpoints
type IngestController struct {
	ingestService services.IngestService
}

// NewIngestController creates a new IngestController
func NewIngestController(ingestService services.IngestService) *IngestController {
	return &IngestController{
		ingestService: ingestService,
	}
}

// ParseDocument parses a single uploaded catalog document
// @Summary Parse an uploaded document
// @Description Extracts courses and requirements from an uploaded RTF or PDF document
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "RTF or PDF document"
// @Success 200 {object} dto.APIResponse{data=ingest.FileResult} "Document parsed successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported file type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parse-rtf [post]
func (c *IngestController) ParseDocument(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.ingestService.ParseUpload(ctx, fileHeader)
	if err != nil && !apperrors.Is(err, apperrors.ErrParseFailed) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Parse failures still carry a per-file result the client can show.
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ParseDocumentBatch parses several uploaded documents in one request
// @Summary Parse a batch of documents
// @Description Extracts courses and requirements from each uploaded document independently
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "RTF or PDF documents"
// @Success 200 {object} dto.APIResponse{data=dto.BatchParseResponse} "Batch parsed"
// @Failure 400 {object} dto.ErrorResponse "No files uploaded"
// @Router /parse-rtf-batch [post]
func (c *IngestController) ParseDocumentBatch(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid multipart form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No files uploaded").WithField("files")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	results := c.ingestService.ParseUploadBatch(ctx, files)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.BatchParseResponse{Results: results},
		Timestamp: time.Now(),
	})
}

// ParseStatus reports the last ingestion pass
// @Summary Get parse status
// @Description Reports how many files, courses and requirements the last reload produced
// @Tags ingest
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ParseStatusResponse} "Parse status"
// @Router /parse-status [get]
func (c *IngestController) ParseStatus(ctx *gin.Context) {
	status, err := c.ingestService.Status(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      status,
		Timestamp: time.Now(),
	})
}

// ReloadData reparses the context directory and replaces the catalog
// @Summary Reload catalog data
// @Description Reparses every document in the context directory and replaces the stored catalog and requirements
// @Tags ingest
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ReloadResponse} "Catalog reloaded"
// @Failure 404 {object} dto.ErrorResponse "Context directory missing"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reload-data [post]
func (c *IngestController) ReloadData(ctx *gin.Context) {
	data, err := c.ingestService.ReloadContext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ReloadResponse{
			Message:                "Context data reloaded",
			TotalCoursesFound:      len(data.Courses),
			TotalRequirementsFound: len(data.Requirements),
		},
		Timestamp: time.Now(),
	})
}
