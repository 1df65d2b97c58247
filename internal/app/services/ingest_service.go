package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/ingest"
	"github.com/jcalhoun/degreeplanner/internal/pkg/apperrors"
	"github.com/jcalhoun/degreeplanner/internal/pkg/filestorage"
	"github.com/jcalhoun/degreeplanner/internal/pkg/logger"
)

// IngestService owns document parsing: ad-hoc uploads and full reloads of
// the context directory into the catalog.
type IngestService interface {
	ParseUpload(ctx context.Context, fileHeader *multipart.FileHeader) (*ingest.FileResult, error)
	ParseUploadBatch(ctx context.Context, files []*multipart.FileHeader) []ingest.FileResult
	ReloadContext(ctx context.Context) (*ingest.ContextData, error)
	Status(ctx context.Context) (*dto.ParseStatusResponse, error)
}

// CourseStore is the slice of the course repository the ingest flow needs.
type CourseStore interface {
	UpsertCourse(ctx context.Context, course *models.Course) error
	DeleteAllCourses(ctx context.Context) error
}

// RequirementStore is the slice of the requirement repository the ingest
// flow needs.
type RequirementStore interface {
	ReplaceAll(ctx context.Context, requirements []models.Requirement) error
}

// ingestServiceImpl implements the IngestService interface
type ingestServiceImpl struct {
	courseRepo      CourseStore
	requirementRepo RequirementStore
	storage         filestorage.FileStorage
	contextDir      string

	// Last reload outcome, reported by Status. Guarded because reloads
	// can be triggered over HTTP while status is read.
	mu       sync.Mutex
	lastData *ingest.ContextData
}

// NewIngestService creates a new ingest service instance
func NewIngestService(
	courseRepo CourseStore,
	requirementRepo RequirementStore,
	storage filestorage.FileStorage,
	contextDir string,
) IngestService {
	return &ingestServiceImpl{
		courseRepo:      courseRepo,
		requirementRepo: requirementRepo,
		storage:         storage,
		contextDir:      contextDir,
	}
}

// ParseUpload stores the uploaded document and runs extraction over it.
// Only .rtf and .pdf uploads are accepted.
func (s *ingestServiceImpl) ParseUpload(ctx context.Context, fileHeader *multipart.FileHeader) (*ingest.FileResult, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("%w: no file uploaded", apperrors.ErrValidationFailed)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".rtf" && ext != ".pdf" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, fileHeader.Filename)
	}

	path, err := s.storage.SaveUpload(fileHeader, "parsed")
	if err != nil {
		return nil, fmt.Errorf("error storing upload: %w", err)
	}

	var result ingest.FileResult
	if ext == ".rtf" {
		result = ingest.ParseRTFFile(path)
	} else {
		result = ingest.ParsePDFFile(path)
	}
	// Report under the original filename, not the uuid storage name.
	result.Filename = fileHeader.Filename

	if result.Status != ingest.StatusSuccess {
		// Keep the upload directory free of documents we could not read.
		if delErr := s.storage.DeleteFile(path); delErr != nil {
			logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove unparseable upload")
		}
		return &result, fmt.Errorf("%w: %s", apperrors.ErrParseFailed, result.Error)
	}
	return &result, nil
}

// ParseUploadBatch parses each upload independently: a bad file yields an
// error entry in its slot and never aborts the batch.
func (s *ingestServiceImpl) ParseUploadBatch(ctx context.Context, files []*multipart.FileHeader) []ingest.FileResult {
	results := make([]ingest.FileResult, 0, len(files))
	for _, fileHeader := range files {
		result, err := s.ParseUpload(ctx, fileHeader)
		if err != nil {
			name := ""
			if fileHeader != nil {
				name = fileHeader.Filename
			}
			results = append(results, ingest.FileResult{
				Filename: name,
				Status:   ingest.StatusError,
				Error:    err.Error(),
			})
			continue
		}
		results = append(results, *result)
	}
	return results
}

// ReloadContext reparses every document in the context directory and
// replaces the stored catalog and requirement tree with the result. A
// reload that extracts nothing leaves storage untouched.
func (s *ingestServiceImpl) ReloadContext(ctx context.Context) (*ingest.ContextData, error) {
	data, err := ingest.ParseContextDir(s.contextDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrContextDirMissing, s.contextDir)
	}

	// An empty parse must not wipe the stored catalog: a fresh install with
	// an empty context directory keeps the seeded sample data, and a reload
	// over all-unparseable documents keeps whatever was live before.
	if len(data.Courses) == 0 && len(data.Requirements) == 0 {
		s.mu.Lock()
		s.lastData = data
		s.mu.Unlock()

		logger.Warn().
			Int("files", data.FilesProcessed).
			Str("dir", s.contextDir).
			Msg("No courses or requirements parsed, keeping existing catalog")
		return data, nil
	}

	if err := s.courseRepo.DeleteAllCourses(ctx); err != nil {
		return nil, err
	}
	for i := range data.Courses {
		if err := s.courseRepo.UpsertCourse(ctx, &data.Courses[i]); err != nil {
			return nil, err
		}
	}
	if err := s.requirementRepo.ReplaceAll(ctx, data.Requirements); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastData = data
	s.mu.Unlock()

	logger.Info().
		Int("files", data.FilesProcessed).
		Int("courses", len(data.Courses)).
		Int("requirements", len(data.Requirements)).
		Msg("Context data reloaded")
	return data, nil
}

// Status reports the last reload pass and whether parsed data is live.
func (s *ingestServiceImpl) Status(ctx context.Context) (*dto.ParseStatusResponse, error) {
	s.mu.Lock()
	last := s.lastData
	s.mu.Unlock()

	status := &dto.ParseStatusResponse{ParseResults: []ingest.FileResult{}}
	if last != nil {
		status.TotalFilesProcessed = last.FilesProcessed
		status.TotalCoursesFound = len(last.Courses)
		status.TotalRequirementsFound = len(last.Requirements)
		status.ParseResults = last.Results
		status.UsingParsedData = len(last.Courses) > 0
	}
	return status, nil
}
