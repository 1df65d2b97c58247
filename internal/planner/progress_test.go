package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
)

func testCatalog() *Catalog {
	return NewCatalog([]models.Course{
		{
			Code:            "BIBL101",
			Name:            "Introduction to Biblical Studies",
			Credits:         3,
			SemesterOffered: []string{"Fall", "Spring"},
			School:          models.SchoolUTS,
		},
		{
			Code:            "THEO201",
			Name:            "Systematic Theology",
			Credits:         4,
			SemesterOffered: []string{"Spring"},
			School:          models.SchoolUTS,
		},
		{
			Code:            "SW501",
			Name:            "Social Work Practice I",
			Credits:         3,
			SemesterOffered: []string{"Fall", "Spring"},
			School:          models.SchoolColumbia,
		},
	})
}

func bibleRequirement() models.Requirement {
	return models.Requirement{
		Name:            "Bible",
		CreditsRequired: 7,
		Courses:         []string{"BIBL101", "THEO201"},
	}
}

func TestRequirementProgress(t *testing.T) {
	req := bibleRequirement()

	tests := []struct {
		name      string
		completed map[string]bool
		want      int
	}{
		{"none completed", map[string]bool{}, 0},
		{"nil map", nil, 0},
		{"half completed", map[string]bool{"BIBL101": true}, 50},
		{"all completed", map[string]bool{"BIBL101": true, "THEO201": true}, 100},
		{"false entries ignored", map[string]bool{"BIBL101": true, "THEO201": false}, 50},
		{"unlisted codes ignored", map[string]bool{"SW501": true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequirementProgress(req, tt.completed))
		})
	}
}

func TestRequirementProgressEmptyCourseList(t *testing.T) {
	req := models.Requirement{Name: "Field Education"}
	assert.Equal(t, 0, RequirementProgress(req, map[string]bool{"BIBL101": true}))
	assert.Equal(t, 0, PlannedProgress(req, map[string]bool{"BIBL101": true}))
}

func TestRequirementProgressRounding(t *testing.T) {
	req := models.Requirement{
		Name:    "Historical Studies",
		Courses: []string{"A", "B", "C"},
	}
	// 1/3 => 33.33 rounds down, 2/3 => 66.67 rounds up.
	assert.Equal(t, 33, RequirementProgress(req, map[string]bool{"A": true}))
	assert.Equal(t, 67, RequirementProgress(req, map[string]bool{"A": true, "B": true}))

	// Exact half rounds away from zero: 1/8 => 12.5 => 13.
	eight := models.Requirement{Courses: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}
	assert.Equal(t, 13, RequirementProgress(eight, map[string]bool{"a": true}))
}

func TestRequirementProgressStaysInRange(t *testing.T) {
	req := bibleRequirement()
	maps := []map[string]bool{
		nil,
		{},
		{"BIBL101": true},
		{"BIBL101": true, "THEO201": true, "SW501": true, "GHOST999": true},
	}
	for _, m := range maps {
		p := RequirementProgress(req, m)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

func TestPlannedAndCompletedAreIndependent(t *testing.T) {
	req := bibleRequirement()
	planned := map[string]bool{"BIBL101": true, "THEO201": true}
	completed := map[string]bool{}

	assert.Equal(t, 100, PlannedProgress(req, planned))
	assert.Equal(t, 0, RequirementProgress(req, completed))

	// Completed without planned is equally legal.
	assert.Equal(t, 50, RequirementProgress(req, map[string]bool{"BIBL101": true}))
	assert.Equal(t, 0, PlannedProgress(req, map[string]bool{}))
}

func TestTotalCredits(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, 0, TotalCredits(nil, catalog))
	assert.Equal(t, 0, TotalCredits(map[string]bool{}, catalog))
	assert.Equal(t, 3, TotalCredits(map[string]bool{"BIBL101": true}, catalog))
	assert.Equal(t, 7, TotalCredits(map[string]bool{"BIBL101": true, "THEO201": true}, catalog))
	assert.Equal(t, 7, TotalCredits(map[string]bool{"BIBL101": true, "THEO201": true, "SW501": false}, catalog))
}

func TestTotalCreditsToleratesUnknownCodes(t *testing.T) {
	catalog := testCatalog()
	selection := map[string]bool{"BIBL101": true, "NOPE999": true}

	require.NotPanics(t, func() {
		assert.Equal(t, 3, TotalCredits(selection, catalog))
	})
}

func TestNegativeCreditsClampedAtCatalogBoundary(t *testing.T) {
	catalog := NewCatalog([]models.Course{{Code: "BAD100", Credits: -3}})
	assert.Equal(t, 0, TotalCredits(map[string]bool{"BAD100": true}, catalog))
}

func TestSemesterCredits(t *testing.T) {
	catalog := testCatalog()
	planned := map[string]bool{"BIBL101": true, "THEO201": true, "SW501": true}

	// BIBL101 and SW501 bucket under Fall (first offered entry), THEO201
	// under Spring.
	assert.Equal(t, 6, SemesterCredits("Fall", planned, catalog))
	assert.Equal(t, 4, SemesterCredits("Spring", planned, catalog))
	assert.Equal(t, 0, SemesterCredits("Summer", planned, catalog))
}

func TestScenarioBibleRequirement(t *testing.T) {
	// Catalog has BIBL101 (3 credits) and THEO201 (4 credits); the Bible
	// requirement lists both; BIBL101 alone is completed.
	req := bibleRequirement()
	completed := map[string]bool{"BIBL101": true}

	assert.Equal(t, 50, RequirementProgress(req, completed))
}
