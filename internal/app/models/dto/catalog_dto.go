package dto

import "github.com/jcalhoun/degreeplanner/internal/app/models"

// SampleDataResponse bundles the built-in fallback catalog.
type SampleDataResponse struct {
	Courses      []models.Course      `json:"courses"`
	Requirements []models.Requirement `json:"requirements"`
}
