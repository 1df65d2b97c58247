package services

import (
	"context"
	"fmt"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/app/repositories"
)

// RequirementService defines the interface for degree requirement operations
type RequirementService interface {
	GetAllRequirements(ctx context.Context) ([]models.Requirement, error)
}

// requirementServiceImpl implements the RequirementService interface
type requirementServiceImpl struct {
	requirementRepo *repositories.RequirementRepository
}

// NewRequirementService creates a new requirement service instance
func NewRequirementService(requirementRepo *repositories.RequirementRepository) RequirementService {
	return &requirementServiceImpl{
		requirementRepo: requirementRepo,
	}
}

// GetAllRequirements returns the requirement tree, roots in authored order.
// Negative credit targets clamp to zero: requirement documents are parsed
// best-effort and the planner must never see malformed numbers.
func (s *requirementServiceImpl) GetAllRequirements(ctx context.Context) ([]models.Requirement, error) {
	requirements, err := s.requirementRepo.GetAllRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requirements: %w", err)
	}
	for i := range requirements {
		if requirements[i].CreditsRequired < 0 {
			requirements[i].CreditsRequired = 0
		}
		for j := range requirements[i].SubRequirements {
			if requirements[i].SubRequirements[j].CreditsRequired < 0 {
				requirements[i].SubRequirements[j].CreditsRequired = 0
			}
		}
	}
	if requirements == nil {
		requirements = []models.Requirement{}
	}
	return requirements, nil
}
