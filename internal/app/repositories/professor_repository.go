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

var professorColumns = []string{"id", "full_name", "bio", "area_of_focus", "photo", "url", "misc", "created_at"}

// PgProfessorRepository handles professor database operations
type PgProfessorRepository struct {
	pgBase
}

// NewProfessorRepository creates a new PgProfessorRepository
func NewProfessorRepository(pg *db.PostgresDB) *PgProfessorRepository {
	return &PgProfessorRepository{pgBase: newPgBase(pg)}
}

func scanProfessor(row rowScanner) (*models.Professor, error) {
	p := &models.Professor{}
	if err := row.Scan(&p.ID, &p.FullName, &p.Bio, &p.AreaOfFocus, &p.Photo, &p.URL, &p.Misc, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Misc = p.Misc.OrEmpty()
	return p, nil
}

// Create creates a new professor
func (r *PgProfessorRepository) Create(ctx context.Context, p *models.Professor) error {
	sql, args, err := r.sb.Insert("professors").
		Columns("full_name", "bio", "area_of_focus", "photo", "url", "misc").
		Values(p.FullName, p.Bio, p.AreaOfFocus, p.Photo, p.URL, p.Misc.OrEmpty()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create professor SQL")
		return fmt.Errorf("failed to build create professor query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return storageError(ctx, err, "error creating professor")
	}
	return nil
}

// GetByID retrieves a professor by ID
func (r *PgProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	sql, args, err := r.sb.Select(professorColumns...).
		From("professors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get professor by ID SQL")
		return nil, fmt.Errorf("failed to build get professor query: %w", err)
	}

	p, err := scanProfessor(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, storageError(ctx, err, "error getting professor by ID")
	}
	return p, nil
}

// List retrieves all professors ordered by name
func (r *PgProfessorRepository) List(ctx context.Context) ([]*models.Professor, error) {
	sql, args, err := r.sb.Select(professorColumns...).
		From("professors").
		OrderBy("full_name ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list professors SQL")
		return nil, fmt.Errorf("failed to build list professors query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, err, "error querying professors")
	}
	defer rows.Close()

	professors := []*models.Professor{}
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, storageError(ctx, err, "error scanning professor row")
		}
		professors = append(professors, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "error iterating professor rows")
	}
	return professors, nil
}

// Update writes the non-nil fields of patch
func (r *PgProfessorRepository) Update(ctx context.Context, id int64, patch models.ProfessorPatch) error {
	set := map[string]interface{}{}
	if patch.FullName != nil {
		set["full_name"] = *patch.FullName
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.AreaOfFocus != nil {
		set["area_of_focus"] = *patch.AreaOfFocus
	}
	if patch.Photo != nil {
		set["photo"] = *patch.Photo
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if patch.Misc != nil {
		set["misc"] = patch.Misc.OrEmpty()
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	sql, args, err := r.sb.Update("professors").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update professor SQL")
		return fmt.Errorf("failed to build update professor query: %w", err)
	}

	cmdTag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return storageError(ctx, err, "error updating professor")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}
