package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/pkg/apperrors"
	"github.com/jcalhoun/degreeplanner/internal/pkg/logger"
)

// PlanRepository persists saved degree plans, keyed by student name.
// Saves are last-writer-wins upserts; plans are single-user documents and
// carry no concurrency control.
type PlanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// UpsertPlan saves or replaces the plan for plan.StudentName.
func (r *PlanRepository) UpsertPlan(ctx context.Context, plan *models.DegreePlan) error {
	courses, err := json.Marshal(plan.Courses)
	if err != nil {
		return fmt.Errorf("error encoding plan courses: %w", err)
	}

	sql, args, err := r.sb.Insert("plans").
		Columns("student_name", "start_semester", "courses", "total_credits").
		Values(plan.StudentName, plan.StartSemester, courses, plan.TotalCredits).
		Suffix(`ON CONFLICT (student_name) DO UPDATE SET
			start_semester = EXCLUDED.start_semester,
			courses = EXCLUDED.courses,
			total_credits = EXCLUDED.total_credits,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert plan SQL")
		return fmt.Errorf("failed to build upsert plan query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("student", plan.StudentName).Msg("Error executing upsert plan query")
		return fmt.Errorf("error saving plan: %w", err)
	}
	return nil
}

// GetPlanByStudent retrieves the saved plan for a student name.
func (r *PlanRepository) GetPlanByStudent(ctx context.Context, studentName string) (*models.DegreePlan, error) {
	sql, args, err := r.sb.Select("student_name", "start_semester", "courses", "total_credits").
		From("plans").
		Where(squirrel.Eq{"student_name": studentName}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get plan query: %w", err)
	}

	plan := &models.DegreePlan{}
	var courses []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(&plan.StudentName, &plan.StartSemester, &courses, &plan.TotalCredits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlanNotFound
		}
		logger.Error().Err(err).Str("student", studentName).Msg("Error scanning plan row")
		return nil, fmt.Errorf("error getting plan: %w", err)
	}

	if err := json.Unmarshal(courses, &plan.Courses); err != nil {
		return nil, fmt.Errorf("error decoding plan courses: %w", err)
	}
	if plan.Courses == nil {
		plan.Courses = map[string]string{}
	}
	return plan, nil
}

// ListStudentNames returns every student name with a saved plan.
func (r *PlanRepository) ListStudentNames(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("student_name").
		From("plans").
		OrderBy("student_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list plans query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list plans query")
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning plan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}
	return names, nil
}
