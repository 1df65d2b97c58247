package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
)

func TestExtractCourseLine(t *testing.T) {
	text := "BIBL 101 - Introduction to Biblical Studies (3 credits)"
	result := ExtractFromText(text, "UTS_Fall_Courses.rtf")

	require.Len(t, result.ExtractedCourses, 1)
	course := result.ExtractedCourses[0]
	assert.Equal(t, "BIBL101", course.Code)
	assert.Equal(t, "Introduction to Biblical Studies", course.Name)
	assert.Equal(t, 3, course.Credits)
	assert.Equal(t, models.SchoolUTS, course.School)
	assert.Equal(t, []string{"Fall"}, course.SemesterOffered)
}

func TestExtractCourseDefaults(t *testing.T) {
	result := ExtractFromText("SW501 - Social Work Practice I", "schedule.rtf")

	require.Len(t, result.ExtractedCourses, 1)
	course := result.ExtractedCourses[0]
	assert.Equal(t, "SW501", course.Code)
	assert.Equal(t, 3, course.Credits)
	assert.Equal(t, models.SchoolColumbia, course.School)
	// No semester hint in the filename: offered both terms.
	assert.Equal(t, []string{"Fall", "Spring"}, course.SemesterOffered)
}

func TestExtractNormalizesSpacedCodes(t *testing.T) {
	result := ExtractFromText("theo 201: Systematic Theology (4 credits)", "spring_catalog.rtf")

	require.Len(t, result.ExtractedCourses, 1)
	assert.Equal(t, "THEO201", result.ExtractedCourses[0].Code)
	assert.Equal(t, 4, result.ExtractedCourses[0].Credits)
	assert.Equal(t, []string{"Spring"}, result.ExtractedCourses[0].SemesterOffered)
}

func TestExtractSkipsJunkLines(t *testing.T) {
	text := "UNION THEOLOGICAL SEMINARY\n2025\nFall 2025\nBIBL 101 - Intro\n"
	result := ExtractFromText(text, "catalog.rtf")

	require.Len(t, result.ExtractedCourses, 1)
	assert.Equal(t, "BIBL101", result.ExtractedCourses[0].Code)
}

func TestExtractRequirementSections(t *testing.T) {
	text := "Core Requirements (12 credits required)\n" +
		"BIBL 101 - Introduction to Biblical Studies\n" +
		"THEO 201 - Systematic Theology\n" +
		"Electives\n" +
		"HIST 310 - Church History\n"
	result := ExtractFromText(text, "MDiv_requirements.rtf")

	require.Len(t, result.ExtractedRequirements, 2)
	core := result.ExtractedRequirements[0]
	assert.Equal(t, "Core Requirements", core.Name)
	assert.Equal(t, 12, core.CreditsRequired)
	assert.Equal(t, []string{"BIBL101", "THEO201"}, core.Courses)

	electives := result.ExtractedRequirements[1]
	assert.Equal(t, []string{"HIST310"}, electives.Courses)
}

func TestExtractPrerequisites(t *testing.T) {
	text := "THEO 301 - Advanced Theology. Prerequisites: THEO 201, BIBL 101."
	result := ExtractFromText(text, "catalog.rtf")

	require.Len(t, result.ExtractedCourses, 1)
	assert.Equal(t, []string{"THEO201", "BIBL101"}, result.ExtractedCourses[0].Prerequisites)
}

func TestExtractSchoolFromFilename(t *testing.T) {
	result := ExtractFromText("XYZ 400 - Cross Listed Seminar", "Columbia_MSSW_catalog.rtf")

	require.Len(t, result.ExtractedCourses, 1)
	assert.Equal(t, models.SchoolColumbia, result.ExtractedCourses[0].School)
}

func TestExtractWordCountAndPreview(t *testing.T) {
	result := ExtractFromText("one two three", "f.rtf")
	assert.Equal(t, 3, result.WordCount)
	assert.Equal(t, "one two three", result.TextContent)
	assert.Equal(t, StatusSuccess, result.Status)
}
