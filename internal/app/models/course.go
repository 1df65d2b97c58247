package models

// Course represents a catalog entry a student may take, identified by a
// unique course code. Catalog data is loaded at ingestion time and is
// immutable for the session.
type Course struct {
	ID              int64    `json:"-" db:"id"`
	Code            string   `json:"code" db:"code"`
	Name            string   `json:"name" db:"name"`
	Credits         int      `json:"credits" db:"credits"`
	Description     string   `json:"description" db:"description"`
	Prerequisites   []string `json:"prerequisites" db:"prerequisites"`
	Corequisites    []string `json:"corequisites" db:"corequisites"`
	SemesterOffered []string `json:"semester_offered" db:"semester_offered"`
	School          string   `json:"school" db:"school"`
}

// Known school values. The set is open: parsed documents may introduce
// others, so School stays a plain string rather than an enum type.
const (
	SchoolUTS      = "UTS"
	SchoolColumbia = "Columbia"
)
