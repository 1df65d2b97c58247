package dto

import "github.com/jcalhoun/degreeplanner/internal/planner"

// ProgressRequest carries the client's selection state. Both maps are
// optional: selection state is persisted client-side and a first-run
// client sends nothing.
type ProgressRequest struct {
	Planned   map[string]bool `json:"planned"`
	Completed map[string]bool `json:"completed"`
}

// RequirementProgressResponse is the per-requirement rollup.
type RequirementProgressResponse struct {
	Name             string                        `json:"name"`
	Description      string                        `json:"description,omitempty"`
	CreditsRequired  int                           `json:"credits_required"`
	CompletedPercent int                           `json:"completed_percent"`
	PlannedPercent   int                           `json:"planned_percent"`
	SubRequirements  []RequirementProgressResponse `json:"sub_requirements,omitempty"`
}

// ProgressResponse is the full reconciliation result for a selection state.
type ProgressResponse struct {
	Requirements     []RequirementProgressResponse `json:"requirements"`
	PlannedCredits   int                           `json:"planned_credits"`
	CompletedCredits int                           `json:"completed_credits"`
}

// ScheduleRequest carries the planned selection to bucket by semester.
// Codes preserves the client's selection order when provided; otherwise
// buckets follow catalog order.
type ScheduleRequest struct {
	Planned map[string]bool `json:"planned"`
	Codes   []string        `json:"codes,omitempty"`
}

// ScheduleResponse is the semester-bucketed plan view.
type ScheduleResponse struct {
	Semesters    []planner.SemesterGroup `json:"semesters"`
	TotalCredits int                     `json:"total_credits"`
}
