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

var clubColumns = []string{"id", "name", "location", "level", "mission", "email", "tags", "url", "misc", "created_at"}

// PgClubRepository handles club database operations
type PgClubRepository struct {
	pgBase
}

// NewClubRepository creates a new PgClubRepository
func NewClubRepository(pg *db.PostgresDB) *PgClubRepository {
	return &PgClubRepository{pgBase: newPgBase(pg)}
}

func scanClub(row rowScanner) (*models.Club, error) {
	c := &models.Club{}
	err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Level, &c.Mission, &c.Email, &c.Tags, &c.URL, &c.Misc, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Level = models.Strings(c.Level)
	if c.Tags == nil {
		c.Tags = []models.Tag{}
	}
	c.Misc = c.Misc.OrEmpty()
	return c, nil
}

// Create creates a new club
func (r *PgClubRepository) Create(ctx context.Context, c *models.Club) error {
	sql, args, err := r.sb.Insert("clubs").
		Columns("name", "location", "level", "mission", "email", "tags", "url", "misc").
		Values(c.Name, c.Location, models.Strings(c.Level), c.Mission, c.Email, models.Dedupe(c.Tags), c.URL, c.Misc.OrEmpty()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create club SQL")
		return fmt.Errorf("failed to build create club query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return storageError(ctx, err, "error creating club")
	}
	return nil
}

// GetByID retrieves a club by ID
func (r *PgClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	sql, args, err := r.sb.Select(clubColumns...).
		From("clubs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get club by ID SQL")
		return nil, fmt.Errorf("failed to build get club query: %w", err)
	}

	c, err := scanClub(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, storageError(ctx, err, "error getting club by ID")
	}
	return c, nil
}

// List retrieves all clubs ordered by name
func (r *PgClubRepository) List(ctx context.Context) ([]*models.Club, error) {
	sql, args, err := r.sb.Select(clubColumns...).
		From("clubs").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list clubs SQL")
		return nil, fmt.Errorf("failed to build list clubs query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, err, "error querying clubs")
	}
	defer rows.Close()

	clubs := []*models.Club{}
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, storageError(ctx, err, "error scanning club row")
		}
		clubs = append(clubs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "error iterating club rows")
	}
	return clubs, nil
}

// Update writes the non-nil fields of patch
func (r *PgClubRepository) Update(ctx context.Context, id int64, patch models.ClubPatch) error {
	set := map[string]interface{}{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Level != nil {
		set["level"] = models.Strings(*patch.Level)
	}
	if patch.Mission != nil {
		set["mission"] = *patch.Mission
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
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
		_, err := r.GetByID(ctx, id)
		return err
	}

	sql, args, err := r.sb.Update("clubs").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update club SQL")
		return fmt.Errorf("failed to build update club query: %w", err)
	}

	cmdTag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return storageError(ctx, err, "error updating club")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}
	return nil
}
