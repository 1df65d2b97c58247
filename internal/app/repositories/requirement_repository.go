package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/pkg/logger"
)

// RequirementRepository handles degree requirement database operations.
// Requirements form a tree; only one level of sub-requirements is
// materialized on read, matching what the planner surfaces.
type RequirementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRequirementRepository creates a new RequirementRepository.
func NewRequirementRepository(db *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ReplaceAll swaps the whole requirement set for a freshly ingested one.
// Runs in a transaction: readers never observe a half-loaded tree.
func (r *RequirementRepository) ReplaceAll(ctx context.Context, requirements []models.Requirement) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting requirement replace transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM requirements"); err != nil {
		logger.Error().Err(err).Msg("Error clearing requirements")
		return fmt.Errorf("error clearing requirements: %w", err)
	}

	for pos, req := range requirements {
		id, err := r.insertRequirement(ctx, tx, req, nil, pos)
		if err != nil {
			return err
		}
		for childPos, sub := range req.SubRequirements {
			if _, err := r.insertRequirement(ctx, tx, sub, &id, childPos); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing requirement replace: %w", err)
	}
	return nil
}

func (r *RequirementRepository) insertRequirement(ctx context.Context, tx pgx.Tx, req models.Requirement, parentID *int64, position int) (int64, error) {
	sql, args, err := r.sb.Insert("requirements").
		Columns("parent_id", "name", "description", "credits_required", "position").
		Values(parentID, req.Name, req.Description, req.CreditsRequired, position).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert requirement query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", req.Name).Msg("Error inserting requirement")
		return 0, fmt.Errorf("error inserting requirement: %w", err)
	}

	for pos, code := range req.Courses {
		csql, cargs, err := r.sb.Insert("requirement_courses").
			Columns("requirement_id", "course_code", "position").
			Values(id, code, pos).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build insert requirement course query: %w", err)
		}
		if _, err := tx.Exec(ctx, csql, cargs...); err != nil {
			logger.Error().Err(err).Str("requirement", req.Name).Str("code", code).Msg("Error linking requirement course")
			return 0, fmt.Errorf("error linking requirement course: %w", err)
		}
	}

	return id, nil
}

// GetAllRequirements returns the root requirements in authored order, with
// course codes and one level of sub-requirements populated.
func (r *RequirementRepository) GetAllRequirements(ctx context.Context) ([]models.Requirement, error) {
	sql, args, err := r.sb.Select("id", "parent_id", "name", "description", "credits_required").
		From("requirements").
		OrderBy("parent_id ASC NULLS FIRST", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get requirements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get requirements query")
		return nil, fmt.Errorf("error getting requirements: %w", err)
	}
	defer rows.Close()

	var roots []models.Requirement
	rootIndex := make(map[int64]int)
	for rows.Next() {
		var (
			req      models.Requirement
			parentID *int64
		)
		if err := rows.Scan(&req.ID, &parentID, &req.Name, &req.Description, &req.CreditsRequired); err != nil {
			return nil, fmt.Errorf("error scanning requirement: %w", err)
		}
		req.Courses = []string{}
		req.SubRequirements = []models.Requirement{}

		if parentID == nil {
			rootIndex[req.ID] = len(roots)
			roots = append(roots, req)
		} else if i, ok := rootIndex[*parentID]; ok {
			roots[i].SubRequirements = append(roots[i].SubRequirements, req)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requirement rows: %w", err)
	}

	if err := r.attachCourses(ctx, roots); err != nil {
		return nil, err
	}
	return roots, nil
}

// attachCourses fills the Courses slice for every requirement in the tree,
// including one level of children.
func (r *RequirementRepository) attachCourses(ctx context.Context, roots []models.Requirement) error {
	sql, args, err := r.sb.Select("requirement_id", "course_code").
		From("requirement_courses").
		OrderBy("requirement_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build requirement courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing requirement courses query")
		return fmt.Errorf("error getting requirement courses: %w", err)
	}
	defer rows.Close()

	codesByID := make(map[int64][]string)
	for rows.Next() {
		var (
			id   int64
			code string
		)
		if err := rows.Scan(&id, &code); err != nil {
			return fmt.Errorf("error scanning requirement course: %w", err)
		}
		codesByID[id] = append(codesByID[id], code)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating requirement course rows: %w", err)
	}

	for i := range roots {
		if codes, ok := codesByID[roots[i].ID]; ok {
			roots[i].Courses = codes
		}
		for j := range roots[i].SubRequirements {
			if codes, ok := codesByID[roots[i].SubRequirements[j].ID]; ok {
				roots[i].SubRequirements[j].Courses = codes
			}
		}
	}
	return nil
}

// CountRequirements returns the number of root requirements.
func (r *RequirementRepository) CountRequirements(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("requirements").
		Where("parent_id IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count requirements query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting requirements")
		return 0, fmt.Errorf("error counting requirements: %w", err)
	}
	return count, nil
}
