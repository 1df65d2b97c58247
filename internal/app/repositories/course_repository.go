package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/pkg/apperrors"
	"github.com/jcalhoun/degreeplanner/internal/pkg/logger"
)

// CourseRepository handles course catalog database operations.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var courseColumns = []string{"id", "code", "name", "credits", "description", "prerequisites", "corequisites", "semester_offered", "school"}

// UpsertCourse inserts a course or updates the existing row with the same
// code. Re-ingesting a catalog document refreshes course data in place.
func (r *CourseRepository) UpsertCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "credits", "description", "prerequisites", "corequisites", "semester_offered", "school").
		Values(course.Code, course.Name, course.Credits, course.Description,
			course.Prerequisites, course.Corequisites, course.SemesterOffered, course.School).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			credits = EXCLUDED.credits,
			description = EXCLUDED.description,
			prerequisites = EXCLUDED.prerequisites,
			corequisites = EXCLUDED.corequisites,
			semester_offered = EXCLUDED.semester_offered,
			school = EXCLUDED.school
			RETURNING id`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert course SQL")
		return fmt.Errorf("failed to build upsert course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		logger.Error().Err(err).Str("code", course.Code).Msg("Error executing upsert course query")
		return fmt.Errorf("error upserting course: %w", err)
	}
	return nil
}

// GetCourseByCode retrieves a course by its code.
func (r *CourseRepository) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by code SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.Code, &course.Name, &course.Credits, &course.Description,
		&course.Prerequisites, &course.Corequisites, &course.SemesterOffered, &course.School)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by code: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves the full catalog in ingestion order.
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error getting courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID, &course.Code, &course.Name, &course.Credits, &course.Description,
			&course.Prerequisites, &course.Corequisites, &course.SemesterOffered, &course.School); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// CountCourses returns the catalog size.
func (r *CourseRepository) CountCourses(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// DeleteAllCourses clears the catalog ahead of a full reload.
func (r *CourseRepository) DeleteAllCourses(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM courses"); err != nil {
		logger.Error().Err(err).Msg("Error deleting courses")
		return fmt.Errorf("error deleting courses: %w", err)
	}
	return nil
}
