package services

import (
	"context"
	"fmt"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/app/repositories"
	"github.com/jcalhoun/degreeplanner/internal/planner"
)

// ProgressService reconciles a client-held selection state against the
// catalog and requirement tree. The computation itself lives in the
// planner package; this service feeds it fresh snapshots from storage.
type ProgressService interface {
	ComputeProgress(ctx context.Context, selection planner.SelectionState) (*dto.ProgressResponse, error)
	ComputeSchedule(ctx context.Context, planned map[string]bool, codes []string) (*dto.ScheduleResponse, error)
}

// progressServiceImpl implements the ProgressService interface
type progressServiceImpl struct {
	courseRepo      *repositories.CourseRepository
	requirementRepo *repositories.RequirementRepository
}

// NewProgressService creates a new progress service instance
func NewProgressService(courseRepo *repositories.CourseRepository, requirementRepo *repositories.RequirementRepository) ProgressService {
	return &progressServiceImpl{
		courseRepo:      courseRepo,
		requirementRepo: requirementRepo,
	}
}

// ComputeProgress rolls the selection up against every requirement and
// totals the credits of both selection maps.
func (s *progressServiceImpl) ComputeProgress(ctx context.Context, selection planner.SelectionState) (*dto.ProgressResponse, error) {
	selection.Normalize()

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	requirements, err := s.requirementRepo.GetAllRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requirements: %w", err)
	}

	response := &dto.ProgressResponse{
		Requirements:     make([]dto.RequirementProgressResponse, 0, len(requirements)),
		PlannedCredits:   planner.TotalCredits(selection.Planned, catalog),
		CompletedCredits: planner.TotalCredits(selection.Completed, catalog),
	}
	for _, req := range requirements {
		response.Requirements = append(response.Requirements, requirementProgress(req, selection))
	}
	return response, nil
}

// requirementProgress computes one requirement's rollup. Sub-requirement
// progress is reported alongside but never folded into the parent's
// percentages.
func requirementProgress(req models.Requirement, selection planner.SelectionState) dto.RequirementProgressResponse {
	resp := dto.RequirementProgressResponse{
		Name:             req.Name,
		Description:      req.Description,
		CreditsRequired:  req.CreditsRequired,
		CompletedPercent: planner.RequirementProgress(req, selection.Completed),
		PlannedPercent:   planner.PlannedProgress(req, selection.Planned),
	}
	for _, sub := range req.SubRequirements {
		resp.SubRequirements = append(resp.SubRequirements, requirementProgress(sub, selection))
	}
	return resp
}

// ComputeSchedule buckets the planned selection by semester. When the
// client supplies its selection order in codes, buckets honor it;
// otherwise catalog order is used.
func (s *progressServiceImpl) ComputeSchedule(ctx context.Context, planned map[string]bool, codes []string) (*dto.ScheduleResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if planned == nil {
		planned = map[string]bool{}
	}
	if len(codes) == 0 {
		codes = planner.PlannedCodes(planned, catalog)
	} else {
		// Client-supplied order still only schedules codes flagged planned.
		ordered := make([]string, 0, len(codes))
		for _, code := range codes {
			if planned[code] {
				ordered = append(ordered, code)
			}
		}
		codes = ordered
	}

	groups := planner.GroupBySemester(codes, catalog)
	if groups == nil {
		groups = []planner.SemesterGroup{}
	}
	return &dto.ScheduleResponse{
		Semesters:    groups,
		TotalCredits: planner.TotalAcrossSemesters(groups),
	}, nil
}

func (s *progressServiceImpl) loadCatalog(ctx context.Context) (*planner.Catalog, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return planner.NewCatalog(courses), nil
}
