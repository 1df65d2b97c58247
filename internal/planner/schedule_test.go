package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
)

func TestAssignSemester(t *testing.T) {
	catalog := testCatalog()

	bibl, _ := catalog.Lookup("BIBL101")
	assert.Equal(t, "Fall", AssignSemester(bibl))

	theo, _ := catalog.Lookup("THEO201")
	assert.Equal(t, "Spring", AssignSemester(theo))

	assert.Equal(t, SemesterUnassigned, AssignSemester(models.Course{Code: "IND900"}))
}

func TestGroupBySemester(t *testing.T) {
	catalog := testCatalog()

	groups := GroupBySemester([]string{"BIBL101"}, catalog)
	require.Len(t, groups, 1)
	assert.Equal(t, "Fall", groups[0].Semester)
	assert.Equal(t, 3, groups[0].Credits)
	require.Len(t, groups[0].Courses, 1)
	assert.Equal(t, "BIBL101", groups[0].Courses[0].Code)
}

func TestGroupBySemesterKeepsInsertionOrder(t *testing.T) {
	catalog := testCatalog()

	// SW501 selected before BIBL101: the Fall bucket preserves that order,
	// and Fall appears before Spring because it was seen first.
	groups := GroupBySemester([]string{"SW501", "THEO201", "BIBL101"}, catalog)
	require.Len(t, groups, 2)
	assert.Equal(t, "Fall", groups[0].Semester)
	assert.Equal(t, []string{groups[0].Courses[0].Code, groups[0].Courses[1].Code}, []string{"SW501", "BIBL101"})
	assert.Equal(t, "Spring", groups[1].Semester)
}

func TestGroupBySemesterSkipsUnknownAndDuplicateCodes(t *testing.T) {
	catalog := testCatalog()

	groups := GroupBySemester([]string{"BIBL101", "GHOST999", "BIBL101"}, catalog)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Courses, 1)
	assert.Equal(t, 3, groups[0].Credits)
}

func TestGroupBySemesterUnassignedBucket(t *testing.T) {
	catalog := NewCatalog([]models.Course{{Code: "IND900", Name: "Independent Study", Credits: 2}})

	groups := GroupBySemester([]string{"IND900"}, catalog)
	require.Len(t, groups, 1)
	assert.Equal(t, SemesterUnassigned, groups[0].Semester)
	assert.Equal(t, 2, groups[0].Credits)
}

func TestCreditSumConsistency(t *testing.T) {
	catalog := testCatalog()

	selections := []map[string]bool{
		{},
		{"BIBL101": true},
		{"BIBL101": true, "THEO201": true, "SW501": true},
		{"BIBL101": true, "GHOST999": true},
		{"THEO201": true, "SW501": false},
	}
	for _, planned := range selections {
		groups := GroupBySemester(PlannedCodes(planned, catalog), catalog)
		assert.Equal(t, TotalCredits(planned, catalog), TotalAcrossSemesters(groups))
	}
}

func TestScheduleTotalsMatchSemesterCredits(t *testing.T) {
	catalog := testCatalog()
	planned := map[string]bool{"BIBL101": true, "THEO201": true, "SW501": true}

	groups := GroupBySemester(PlannedCodes(planned, catalog), catalog)
	for _, g := range groups {
		assert.Equal(t, SemesterCredits(g.Semester, planned, catalog), g.Credits)
	}
}
