package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/app/models/dto"
	"github.com/jcalhoun/degreeplanner/internal/pkg/apperrors"
	"github.com/jcalhoun/degreeplanner/internal/planner"
)

type stubCatalogService struct {
	courses []models.Course
}

func (s *stubCatalogService) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses, nil
}

func (s *stubCatalogService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	for i := range s.courses {
		if s.courses[i].Code == code {
			return &s.courses[i], nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

type stubProgressService struct{}

func (s *stubProgressService) ComputeProgress(ctx context.Context, selection planner.SelectionState) (*dto.ProgressResponse, error) {
	selection.Normalize()
	return &dto.ProgressResponse{
		Requirements: []dto.RequirementProgressResponse{
			{Name: "Core", PlannedPercent: 50},
		},
		PlannedCredits: 3,
	}, nil
}

func (s *stubProgressService) ComputeSchedule(ctx context.Context, planned map[string]bool, codes []string) (*dto.ScheduleResponse, error) {
	return &dto.ScheduleResponse{
		Semesters: []planner.SemesterGroup{{
			Semester: "Fall",
			Courses:  []models.Course{{Code: "BIBL101", Name: "Introduction to Biblical Studies", Credits: 3}},
			Credits:  3,
		}},
		TotalCredits: 3,
	}, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGetAllCourses(t *testing.T) {
	router := testRouter()
	ctrl := NewCatalogController(&stubCatalogService{courses: []models.Course{
		{Code: "BIBL101", Name: "Introduction to Biblical Studies", Credits: 3, School: models.SchoolUTS},
	}})
	router.GET("/api/v1/courses", ctrl.GetAllCourses)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "BIBL101", resp.Data[0].Code)
}

func TestGetCourseByCodeNotFound(t *testing.T) {
	router := testRouter()
	ctrl := NewCatalogController(&stubCatalogService{})
	router.GET("/api/v1/courses/:code", ctrl.GetCourseByCode)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/NOPE999", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestComputeProgress(t *testing.T) {
	router := testRouter()
	ctrl := NewProgressController(&stubProgressService{})
	router.POST("/api/v1/progress", ctrl.ComputeProgress)

	body := `{"planned":{"BIBL101":true},"completed":{}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.ProgressResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Requirements, 1)
	assert.Equal(t, 50, resp.Data.Requirements[0].PlannedPercent)
	assert.Equal(t, 3, resp.Data.PlannedCredits)
}

func TestComputeProgressBadPayload(t *testing.T) {
	router := testRouter()
	ctrl := NewProgressController(&stubProgressService{})
	router.POST("/api/v1/progress", ctrl.ComputeProgress)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progress", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComputeSchedule(t *testing.T) {
	router := testRouter()
	ctrl := NewProgressController(&stubProgressService{})
	router.POST("/api/v1/schedule", ctrl.ComputeSchedule)

	body := `{"planned":{"BIBL101":true},"codes":["BIBL101"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.ScheduleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Semesters, 1)
	assert.Equal(t, "Fall", resp.Data.Semesters[0].Semester)
	require.Len(t, resp.Data.Semesters[0].Courses, 1)
	assert.Equal(t, "BIBL101", resp.Data.Semesters[0].Courses[0].Code)
	assert.Equal(t, 3, resp.Data.TotalCredits)
}

func TestGetSampleData(t *testing.T) {
	router := testRouter()
	ctrl := NewCatalogController(&stubCatalogService{})
	router.GET("/api/v1/sample-data", ctrl.GetSampleData)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sample-data", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.SampleDataResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Courses)
	assert.NotEmpty(t, resp.Data.Requirements)
}
