package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/app/repositories"
	"github.com/jcalhoun/degreeplanner/internal/pkg/apperrors"
)

// CatalogService defines the interface for course catalog operations
type CatalogService interface {
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(courseRepo *repositories.CourseRepository) CatalogService {
	return &catalogServiceImpl{
		courseRepo: courseRepo,
	}
}

// GetAllCourses returns the full course catalog.
func (s *catalogServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// GetCourseByCode retrieves a single course by its code.
func (s *catalogServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetCourseByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}
