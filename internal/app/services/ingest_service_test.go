package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
)

type fakeCourseStore struct {
	deleteCalls int
	upserted    []string
}

func (f *fakeCourseStore) UpsertCourse(ctx context.Context, course *models.Course) error {
	f.upserted = append(f.upserted, course.Code)
	return nil
}

func (f *fakeCourseStore) DeleteAllCourses(ctx context.Context) error {
	f.deleteCalls++
	return nil
}

type fakeRequirementStore struct {
	replaced [][]models.Requirement
}

func (f *fakeRequirementStore) ReplaceAll(ctx context.Context, requirements []models.Requirement) error {
	f.replaced = append(f.replaced, requirements)
	return nil
}

func TestReloadContextEmptyDirKeepsCatalog(t *testing.T) {
	courses := &fakeCourseStore{}
	requirements := &fakeRequirementStore{}
	svc := NewIngestService(courses, requirements, nil, t.TempDir())

	data, err := svc.ReloadContext(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Courses)
	assert.Empty(t, data.Requirements)

	// Nothing parsed, so the stored catalog must stay untouched.
	assert.Zero(t, courses.deleteCalls)
	assert.Empty(t, courses.upserted)
	assert.Empty(t, requirements.replaced)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.UsingParsedData)
}

func TestReloadContextUnparseableFilesKeepCatalog(t *testing.T) {
	dir := t.TempDir()
	// A PDF that is not a PDF fails extraction and must be skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0o644))

	courses := &fakeCourseStore{}
	requirements := &fakeRequirementStore{}
	svc := NewIngestService(courses, requirements, nil, dir)

	data, err := svc.ReloadContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, data.FilesProcessed)
	assert.Empty(t, data.Courses)

	assert.Zero(t, courses.deleteCalls)
	assert.Empty(t, requirements.replaced)
}

func TestReloadContextReplacesCatalog(t *testing.T) {
	dir := t.TempDir()
	doc := `{\rtf1 Core Requirements: 6 credits required\par BIBL101 - Introduction to Biblical Studies (3 credits)\par}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MDiv_Fall.rtf"), []byte(doc), 0o644))

	courses := &fakeCourseStore{}
	requirements := &fakeRequirementStore{}
	svc := NewIngestService(courses, requirements, nil, dir)

	data, err := svc.ReloadContext(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Courses, 1)

	assert.Equal(t, 1, courses.deleteCalls)
	assert.Equal(t, []string{"BIBL101"}, courses.upserted)
	require.Len(t, requirements.replaced, 1)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.UsingParsedData)
	assert.Equal(t, 1, status.TotalFilesProcessed)
}

func TestReloadContextMissingDir(t *testing.T) {
	svc := NewIngestService(&fakeCourseStore{}, &fakeRequirementStore{}, nil, filepath.Join(t.TempDir(), "absent"))

	_, err := svc.ReloadContext(context.Background())
	assert.Error(t, err)
}
