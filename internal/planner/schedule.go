package planner

import "github.com/jcalhoun/degreeplanner/internal/app/models"

// SemesterUnassigned is the bucket for planned courses with no known
// offering pattern.
const SemesterUnassigned = "Unassigned"

// SemesterGroup is one bucket of the assembled schedule view.
type SemesterGroup struct {
	Semester string          `json:"semester"`
	Courses  []models.Course `json:"courses"`
	Credits  int             `json:"credits"`
}

// AssignSemester derives the display bucket for a course from its
// historical offering pattern: the first semester_offered entry, or the
// Unassigned sentinel when the pattern is empty. This is a heuristic
// "when is it typically offered", not a student-chosen target term.
func AssignSemester(course models.Course) string {
	if len(course.SemesterOffered) == 0 {
		return SemesterUnassigned
	}
	return course.SemesterOffered[0]
}

// GroupBySemester projects an ordered list of planned course codes into
// semester buckets. Buckets appear in first-seen order and courses within
// a bucket keep the selection's insertion order. Codes that do not resolve
// in the catalog are skipped, and a code appearing twice is grouped once.
func GroupBySemester(plannedCodes []string, catalog *Catalog) []SemesterGroup {
	var groups []SemesterGroup
	index := make(map[string]int)
	seen := make(map[string]bool)

	for _, code := range plannedCodes {
		if seen[code] {
			continue
		}
		seen[code] = true

		course, ok := catalog.Lookup(code)
		if !ok {
			continue
		}

		label := AssignSemester(course)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, SemesterGroup{Semester: label})
		}
		groups[i].Courses = append(groups[i].Courses, course)
		groups[i].Credits += course.Credits
	}

	return groups
}

// TotalAcrossSemesters sums the per-bucket credit totals. For any planned
// selection this equals TotalCredits over the same codes: both sides skip
// unknown codes and count each course once.
func TotalAcrossSemesters(groups []SemesterGroup) int {
	total := 0
	for _, g := range groups {
		total += g.Credits
	}
	return total
}

// PlannedCodes flattens a planned selection map into a deterministic code
// list, ordered by the catalog's ingestion order. Callers that track their
// own insertion order should pass it to GroupBySemester directly.
func PlannedCodes(planned map[string]bool, catalog *Catalog) []string {
	var codes []string
	for _, course := range catalog.Courses() {
		if planned[course.Code] {
			codes = append(codes, course.Code)
		}
	}
	return codes
}
