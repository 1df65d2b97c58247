// Package planner implements the requirement-progress reconciliation core:
// pure functions that roll a student's planned and completed course
// selections up against the degree requirement hierarchy.
//
// Nothing in this package performs I/O or holds shared mutable state. The
// catalog and requirement inputs are treated as read-only snapshots, so
// every function here is safe to call from any goroutine. Malformed
// cross-references (selections or requirements naming courses absent from
// the catalog) are never errors: they resolve to zero credits and zero
// progress contribution.
package planner

import "github.com/jcalhoun/degreeplanner/internal/app/models"

// Catalog is an immutable, code-indexed view over the session's courses.
type Catalog struct {
	courses []models.Course
	byCode  map[string]models.Course
}

// NewCatalog builds a catalog from the ingested course list. Duplicate
// codes keep the first occurrence; negative credits clamp to zero so the
// progress engine never sees them.
func NewCatalog(courses []models.Course) *Catalog {
	c := &Catalog{
		courses: make([]models.Course, 0, len(courses)),
		byCode:  make(map[string]models.Course, len(courses)),
	}
	for _, course := range courses {
		if course.Credits < 0 {
			course.Credits = 0
		}
		if _, ok := c.byCode[course.Code]; ok {
			continue
		}
		c.byCode[course.Code] = course
		c.courses = append(c.courses, course)
	}
	return c
}

// Lookup resolves a course code. The second return is false for codes the
// catalog does not know about.
func (c *Catalog) Lookup(code string) (models.Course, bool) {
	course, ok := c.byCode[code]
	return course, ok
}

// Courses returns the catalog contents in ingestion order.
func (c *Catalog) Courses() []models.Course {
	return c.courses
}

// Len reports the number of distinct courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}
