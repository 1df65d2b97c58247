package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/app/repositories"
	"github.com/jcalhoun/degreeplanner/internal/pkg/apperrors"
	"github.com/jcalhoun/degreeplanner/internal/planner"
)

// PlanService defines the interface for saved degree plan operations
type PlanService interface {
	SavePlan(ctx context.Context, plan *models.DegreePlan) error
	GetPlan(ctx context.Context, studentName string) (*models.DegreePlan, error)
	ListPlans(ctx context.Context) ([]string, error)
}

// planServiceImpl implements the PlanService interface
type planServiceImpl struct {
	planRepo   *repositories.PlanRepository
	courseRepo *repositories.CourseRepository
}

// NewPlanService creates a new plan service instance
func NewPlanService(planRepo *repositories.PlanRepository, courseRepo *repositories.CourseRepository) PlanService {
	return &planServiceImpl{
		planRepo:   planRepo,
		courseRepo: courseRepo,
	}
}

// SavePlan saves or replaces a student's plan. The credit total is
// recomputed server-side from the catalog rather than trusted from the
// client; plan entries referencing unknown codes are kept but count zero.
func (s *planServiceImpl) SavePlan(ctx context.Context, plan *models.DegreePlan) error {
	if plan == nil || strings.TrimSpace(plan.StudentName) == "" {
		return fmt.Errorf("%w: student name cannot be empty", apperrors.ErrValidationFailed)
	}
	if plan.Courses == nil {
		plan.Courses = map[string]string{}
	}

	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return fmt.Errorf("error retrieving courses: %w", err)
	}
	catalog := planner.NewCatalog(courses)

	selected := make(map[string]bool, len(plan.Courses))
	for code := range plan.Courses {
		selected[code] = true
	}
	plan.TotalCredits = planner.TotalCredits(selected, catalog)

	if err := s.planRepo.UpsertPlan(ctx, plan); err != nil {
		return fmt.Errorf("error saving plan: %w", err)
	}
	return nil
}

// GetPlan retrieves a saved plan by student name.
func (s *planServiceImpl) GetPlan(ctx context.Context, studentName string) (*models.DegreePlan, error) {
	if strings.TrimSpace(studentName) == "" {
		return nil, fmt.Errorf("%w: student name cannot be empty", apperrors.ErrValidationFailed)
	}

	plan, err := s.planRepo.GetPlanByStudent(ctx, studentName)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}
	return plan, nil
}

// ListPlans returns every student name with a saved plan.
func (s *planServiceImpl) ListPlans(ctx context.Context) ([]string, error) {
	names, err := s.planRepo.ListStudentNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	return names, nil
}
