package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository      *CourseRepository
	RequirementRepository *RequirementRepository
	PlanRepository        *PlanRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:      NewCourseRepository(db),
		RequirementRepository: NewRequirementRepository(db),
		PlanRepository:        NewPlanRepository(db),
	}
}
