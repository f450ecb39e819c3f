package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/db"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
	"github.com/khoury-cyber-guide/backend/internal/pkg/logger"
)

var courseColumns = []string{
	"id", "course_program", "course_code", "title", "description", "extended_description",
	"url", "coreq", "attributes", "terms", "tutoring", "category_tag", "misc", "created_at",
}

// PgCourseRepository handles course database operations
type PgCourseRepository struct {
	pgBase
}

// NewCourseRepository creates a new PgCourseRepository
func NewCourseRepository(pg *db.PostgresDB) *PgCourseRepository {
	return &PgCourseRepository{pgBase: newPgBase(pg)}
}

func scanCourse(row rowScanner) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.ID, &c.CourseProgram, &c.CourseCode, &c.Title, &c.Description, &c.ExtendedDescription,
		&c.URL, &c.Coreq, &c.Attributes, &c.Terms, &c.Tutoring, &c.CategoryTag, &c.Misc, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Attributes == nil {
		c.Attributes = []models.CourseAttribute{}
	}
	if c.CategoryTag == nil {
		c.CategoryTag = []models.CourseCategoryTag{}
	}
	c.Misc = c.Misc.OrEmpty()
	return c, nil
}

// Create creates a new course
func (r *PgCourseRepository) Create(ctx context.Context, c *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns(
			"course_program", "course_code", "title", "description", "extended_description",
			"url", "coreq", "attributes", "terms", "tutoring", "category_tag", "misc",
		).
		Values(
			string(c.CourseProgram), c.CourseCode, c.Title, c.Description, c.ExtendedDescription,
			c.URL, c.Coreq, models.Dedupe(c.Attributes), c.Terms, c.Tutoring, models.Dedupe(c.CategoryTag), c.Misc.OrEmpty(),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return storageError(ctx, err, "error creating course")
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *PgCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c, err := scanCourse(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, storageError(ctx, err, "error getting course by ID")
	}
	return c, nil
}

// List retrieves all courses ordered by program and code
func (r *PgCourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("course_program ASC", "course_code ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, err, "error querying courses")
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, storageError(ctx, err, "error scanning course row")
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "error iterating course rows")
	}
	return courses, nil
}

// Update writes the non-nil fields of patch
func (r *PgCourseRepository) Update(ctx context.Context, id int64, patch models.CoursePatch) error {
	set := map[string]interface{}{}
	if patch.CourseProgram != nil {
		set["course_program"] = string(*patch.CourseProgram)
	}
	if patch.CourseCode != nil {
		set["course_code"] = *patch.CourseCode
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ExtendedDescription != nil {
		set["extended_description"] = *patch.ExtendedDescription
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if patch.Coreq != nil {
		set["coreq"] = *patch.Coreq
	}
	if patch.Attributes != nil {
		set["attributes"] = models.Dedupe(*patch.Attributes)
	}
	if patch.Terms != nil {
		set["terms"] = *patch.Terms
	}
	if patch.Tutoring != nil {
		set["tutoring"] = *patch.Tutoring
	}
	if patch.CategoryTag != nil {
		set["category_tag"] = models.Dedupe(*patch.CategoryTag)
	}
	if patch.Misc != nil {
		set["misc"] = patch.Misc.OrEmpty()
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	sql, args, err := r.sb.Update("courses").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return storageError(ctx, err, "error updating course")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
