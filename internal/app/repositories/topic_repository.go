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

var topicColumns = []string{"id", "title", "description", "off_campus", "misc", "created_at"}

// PgTopicRepository handles topic database operations
type PgTopicRepository struct {
	pgBase
}

// NewTopicRepository creates a new PgTopicRepository
func NewTopicRepository(pg *db.PostgresDB) *PgTopicRepository {
	return &PgTopicRepository{pgBase: newPgBase(pg)}
}

func scanTopic(row rowScanner) (*models.Topic, error) {
	t := &models.Topic{}
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.OffCampus, &t.Misc, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.OffCampus = t.OffCampus.Normalize()
	t.Misc = t.Misc.OrEmpty()
	return t, nil
}

// Create creates a new topic
func (r *PgTopicRepository) Create(ctx context.Context, t *models.Topic) error {
	sql, args, err := r.sb.Insert("topics").
		Columns("title", "description", "off_campus", "misc").
		Values(t.Title, t.Description, t.OffCampus.Normalize(), t.Misc.OrEmpty()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create topic SQL")
		return fmt.Errorf("failed to build create topic query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		return storageError(ctx, err, "error creating topic")
	}
	return nil
}

// GetByID retrieves a topic by ID
func (r *PgTopicRepository) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	sql, args, err := r.sb.Select(topicColumns...).
		From("topics").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get topic by ID SQL")
		return nil, fmt.Errorf("failed to build get topic query: %w", err)
	}

	t, err := scanTopic(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, storageError(ctx, err, "error getting topic by ID")
	}
	return t, nil
}

// List retrieves all topics ordered by id
func (r *PgTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	sql, args, err := r.sb.Select(topicColumns...).
		From("topics").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list topics SQL")
		return nil, fmt.Errorf("failed to build list topics query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, err, "error querying topics")
	}
	defer rows.Close()

	topics := []*models.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, storageError(ctx, err, "error scanning topic row")
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "error iterating topic rows")
	}
	return topics, nil
}

// Update writes the non-nil fields of patch
func (r *PgTopicRepository) Update(ctx context.Context, id int64, patch models.TopicPatch) error {
	set := map[string]interface{}{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.OffCampus != nil {
		set["off_campus"] = patch.OffCampus.Normalize()
	}
	if patch.Misc != nil {
		set["misc"] = patch.Misc.OrEmpty()
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	sql, args, err := r.sb.Update("topics").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update topic SQL")
		return fmt.Errorf("failed to build update topic query: %w", err)
	}

	cmdTag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return storageError(ctx, err, "error updating topic")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTopicNotFound
	}
	return nil
}

// Count returns the number of stored topics
func (r *PgTopicRepository) Count(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("topics").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count topics query: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, storageError(ctx, err, "error counting topics")
	}
	return n, nil
}
