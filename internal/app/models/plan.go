package models

// DegreePlan is a student's saved plan: a mapping from course code to the
// semester the student placed it in. Plans are single-user and saved with
// last-writer-wins semantics; there is no concurrency control.
type DegreePlan struct {
	StudentName   string            `json:"student_name" db:"student_name"`
	StartSemester string            `json:"start_semester" db:"start_semester"`
	Courses       map[string]string `json:"courses"`
	TotalCredits  int               `json:"total_credits" db:"total_credits"`
}

// StudentProfile carries display context only; no computation depends on it.
type StudentProfile struct {
	Name          string `json:"name"`
	StartSemester string `json:"start_semester"`
}
