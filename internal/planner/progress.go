package planner

import "github.com/jcalhoun/degreeplanner/internal/app/models"

// RequirementProgress returns the percentage of the requirement's directly
// listed courses marked true in the completed map, rounded to the nearest
// integer (half away from zero). A requirement with no listed courses is
// 0% complete. Sub-requirements are deliberately excluded: their progress
// is reported separately and never summed into the parent.
func RequirementProgress(req models.Requirement, completed map[string]bool) int {
	return selectionPercent(req.Courses, completed)
}

// PlannedProgress is RequirementProgress computed over the planned map.
// The two percentages are independent: a course can be planned-only,
// completed-only, both, or neither, so neither value bounds the other.
func PlannedProgress(req models.Requirement, planned map[string]bool) int {
	return selectionPercent(req.Courses, planned)
}

// selectionPercent computes round(100 * selected / total) for the listed
// course codes. Codes are counted whether or not they resolve in any
// catalog; the requirement list is the denominator.
func selectionPercent(codes []string, selection map[string]bool) int {
	if len(codes) == 0 {
		return 0
	}
	selected := 0
	for _, code := range codes {
		if selection[code] {
			selected++
		}
	}
	// Integer round-half-up; equals half-away-from-zero since both
	// operands are non-negative.
	return (200*selected + len(codes)) / (2 * len(codes))
}

// TotalCredits sums the credits of every selected course that resolves in
// the catalog. Selected codes the catalog does not know about contribute
// zero; they are not errors.
func TotalCredits(selection map[string]bool, catalog *Catalog) int {
	total := 0
	for code, on := range selection {
		if !on {
			continue
		}
		if course, ok := catalog.Lookup(code); ok {
			total += course.Credits
		}
	}
	return total
}

// SemesterCredits sums the credits of planned courses whose assigned
// semester (see AssignSemester) equals label.
func SemesterCredits(label string, planned map[string]bool, catalog *Catalog) int {
	total := 0
	for _, course := range catalog.Courses() {
		if planned[course.Code] && AssignSemester(course) == label {
			total += course.Credits
		}
	}
	return total
}
