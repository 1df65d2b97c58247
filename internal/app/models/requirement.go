package models

// Requirement is a named degree rule satisfied by completing a subset of
// courses up to a credit target. Requirements may nest one level of
// sub-requirements; sub-requirement progress is informational only and is
// never summed into the parent's percentage.
//
// Courses holds course codes, not IDs. A code may appear in any number of
// requirements, and may reference courses absent from the catalog — the
// requirement documents are authored independently of the course schedules.
type Requirement struct {
	ID              int64         `json:"-" db:"id"`
	Name            string        `json:"name" db:"name"`
	Description     string        `json:"description" db:"description"`
	CreditsRequired int           `json:"credits_required" db:"credits_required"`
	Courses         []string      `json:"courses"`
	SubRequirements []Requirement `json:"sub_requirements"`
}
