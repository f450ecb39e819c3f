package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeQuerier struct{ name string }

func (f *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (f *fakeQuerier) Begin(context.Context) (pgx.Tx, error) { return nil, nil }

func TestQuerierFrom(t *testing.T) {
	pool := &fakeQuerier{name: "pool"}
	session := &fakeQuerier{name: "session"}

	assert.Same(t, pool, QuerierFrom(context.Background(), pool))

	ctx := WithQuerier(context.Background(), session)
	assert.Same(t, session, QuerierFrom(ctx, pool))

	tx := &fakeQuerier{name: "tx"}
	assert.Same(t, tx, QuerierFrom(WithQuerier(ctx, tx), pool), "innermost binding wins")
}
