package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/db"
)

// PgAssociationRepository handles one join table
type PgAssociationRepository struct {
	pgBase
	rel Relation
}

// NewAssociationRepository creates a repository over the join table of rel
func NewAssociationRepository(pg *db.PostgresDB, rel Relation) *PgAssociationRepository {
	return &PgAssociationRepository{pgBase: newPgBase(pg), rel: rel}
}

// Relation returns the join relation handled by the repository
func (r *PgAssociationRepository) Relation() Relation {
	return r.rel
}

// Forward returns the right ids linked to left
func (r *PgAssociationRepository) Forward(ctx context.Context, left int64) ([]int64, error) {
	return r.side(ctx, r.rel.Left.Column, r.rel.Right.Column, left)
}

// Reverse returns the left ids linked to right
func (r *PgAssociationRepository) Reverse(ctx context.Context, right int64) ([]int64, error) {
	return r.side(ctx, r.rel.Right.Column, r.rel.Left.Column, right)
}

func (r *PgAssociationRepository) side(ctx context.Context, keyCol, valCol string, key int64) ([]int64, error) {
	sql, args, err := r.sb.Select(valCol).
		From(r.rel.Table).
		Where(squirrel.Eq{keyCol: key}).
		OrderBy(valCol + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s lookup query: %w", r.rel.Table, err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, err, "error querying "+r.rel.Table)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, storageError(ctx, err, "error scanning "+r.rel.Table+" row")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "error iterating "+r.rel.Table)
	}
	return ids, nil
}

// ForwardMany resolves Forward for several left ids
func (r *PgAssociationRepository) ForwardMany(ctx context.Context, lefts []int64) (map[int64][]int64, error) {
	return r.many(ctx, r.rel.Left.Column, r.rel.Right.Column, lefts)
}

// ReverseMany resolves Reverse for several right ids
func (r *PgAssociationRepository) ReverseMany(ctx context.Context, rights []int64) (map[int64][]int64, error) {
	return r.many(ctx, r.rel.Right.Column, r.rel.Left.Column, rights)
}

func (r *PgAssociationRepository) many(ctx context.Context, keyCol, valCol string, keys []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	sql, args, err := r.sb.Select(keyCol, valCol).
		From(r.rel.Table).
		Where(squirrel.Eq{keyCol: keys}).
		OrderBy(keyCol+" ASC", valCol+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s batch query: %w", r.rel.Table, err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, err, "error querying "+r.rel.Table)
	}
	defer rows.Close()

	for rows.Next() {
		var key, val int64
		if err := rows.Scan(&key, &val); err != nil {
			return nil, storageError(ctx, err, "error scanning "+r.rel.Table+" row")
		}
		out[key] = append(out[key], val)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "error iterating "+r.rel.Table)
	}
	return out, nil
}

// Link adds the pair (left, right)
func (r *PgAssociationRepository) Link(ctx context.Context, left, right int64) error {
	sql, args, err := r.sb.Insert(r.rel.Table).
		Columns(r.rel.Left.Column, r.rel.Right.Column).
		Values(left, right).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s link query: %w", r.rel.Table, err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return linkError(ctx, r.rel, err, "error linking "+r.rel.Table)
	}
	return nil
}

// Unlink removes the pair (left, right)
func (r *PgAssociationRepository) Unlink(ctx context.Context, left, right int64) error {
	sql, args, err := r.sb.Delete(r.rel.Table).
		Where(squirrel.Eq{r.rel.Left.Column: left, r.rel.Right.Column: right}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s unlink query: %w", r.rel.Table, err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return storageError(ctx, err, "error unlinking "+r.rel.Table)
	}
	return nil
}

// ReplaceForward makes rights the exact set linked to left
func (r *PgAssociationRepository) ReplaceForward(ctx context.Context, left int64, rights []int64) error {
	return r.replace(ctx, r.rel.Left.Column, left, rights, func(key, val int64) []interface{} {
		return []interface{}{key, val}
	})
}

// ReplaceReverse makes lefts the exact set linked to right
func (r *PgAssociationRepository) ReplaceReverse(ctx context.Context, right int64, lefts []int64) error {
	return r.replace(ctx, r.rel.Right.Column, right, lefts, func(key, val int64) []interface{} {
		return []interface{}{val, key}
	})
}

// replace deletes every pair of key and inserts the new set, atomically.
// pair orders (key, val) as (left, right) for the insert.
func (r *PgAssociationRepository) replace(ctx context.Context, keyCol string, key int64, vals []int64,
	pair func(key, val int64) []interface{}) error {
	vals = models.Dedupe(vals)
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })

	return r.db.WithTransaction(ctx, func(ctx context.Context) error {
		delSQL, delArgs, err := r.sb.Delete(r.rel.Table).
			Where(squirrel.Eq{keyCol: key}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build %s clear query: %w", r.rel.Table, err)
		}
		if _, err := r.q(ctx).Exec(ctx, delSQL, delArgs...); err != nil {
			return storageError(ctx, err, "error clearing "+r.rel.Table)
		}

		if len(vals) == 0 {
			return nil
		}

		insert := r.sb.Insert(r.rel.Table).Columns(r.rel.Left.Column, r.rel.Right.Column)
		for _, val := range vals {
			insert = insert.Values(pair(key, val)...)
		}
		insSQL, insArgs, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build %s insert query: %w", r.rel.Table, err)
		}
		if _, err := r.q(ctx).Exec(ctx, insSQL, insArgs...); err != nil {
			return linkError(ctx, r.rel, err, "error replacing "+r.rel.Table)
		}
		return nil
	})
}
