package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/db"
	"github.com/khoury-cyber-guide/backend/internal/pkg/logger"
)

var resourceColumns = []string{"id", "title", "tags", "url", "misc", "created_at"}

// PgResourceRepository handles the four listing tables, which share one layout
type PgResourceRepository struct {
	pgBase
}

// NewResourceRepository creates a new PgResourceRepository
func NewResourceRepository(pg *db.PostgresDB) *PgResourceRepository {
	return &PgResourceRepository{pgBase: newPgBase(pg)}
}

func scanResource(row rowScanner, kind models.ResourceKind) (*models.Resource, error) {
	res := &models.Resource{Kind: kind}
	if err := row.Scan(&res.ID, &res.Title, &res.Tags, &res.URL, &res.Misc, &res.CreatedAt); err != nil {
		return nil, err
	}
	if res.Tags == nil {
		res.Tags = []models.Tag{}
	}
	res.Misc = res.Misc.OrEmpty()
	return res, nil
}

// Create creates a new listing in the table of res.Kind
func (r *PgResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	sql, args, err := r.sb.Insert(res.Kind.Table()).
		Columns("title", "tags", "url", "misc").
		Values(res.Title, models.Dedupe(res.Tags), res.URL, res.Misc.OrEmpty()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", string(res.Kind)).Msg("Error building create listing SQL")
		return fmt.Errorf("failed to build create %s query: %w", res.Kind.Label(), err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&res.ID, &res.CreatedAt); err != nil {
		return storageError(ctx, err, "error creating "+res.Kind.Label())
	}
	return nil
}

// GetByID retrieves one listing
func (r *PgResourceRepository) GetByID(ctx context.Context, kind models.ResourceKind, id int64) (*models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).
		From(kind.Table()).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s query: %w", kind.Label(), err)
	}

	res, err := scanResource(r.q(ctx).QueryRow(ctx, sql, args...), kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ResourceNotFound(kind)
		}
		return nil, storageError(ctx, err, "error getting "+kind.Label())
	}
	return res, nil
}

// List retrieves every listing of a kind ordered by id
func (r *PgResourceRepository) List(ctx context.Context, kind models.ResourceKind) ([]*models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).
		From(kind.Table()).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s query: %w", kind.Label(), err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, err, "error querying "+kind.Table())
	}
	defer rows.Close()

	resources := []*models.Resource{}
	for rows.Next() {
		res, err := scanResource(rows, kind)
		if err != nil {
			return nil, storageError(ctx, err, "error scanning "+kind.Label()+" row")
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "error iterating "+kind.Table())
	}
	return resources, nil
}

// Update writes the non-nil fields of patch
func (r *PgResourceRepository) Update(ctx context.Context, kind models.ResourceKind, id int64, patch models.ResourcePatch) error {
	set := map[string]interface{}{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Tags != nil {
		set["tags"] = models.Dedupe(*patch.Tags)
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if patch.Misc != nil {
		set["misc"] = patch.Misc.OrEmpty()
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, kind, id)
		return err
	}

	sql, args, err := r.sb.Update(kind.Table()).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update %s query: %w", kind.Label(), err)
	}

	cmdTag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return storageError(ctx, err, "error updating "+kind.Label())
	}
	if cmdTag.RowsAffected() == 0 {
		return ResourceNotFound(kind)
	}
	return nil
}
