package dberrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCodeChecks(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeForeignKeyViolation})
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsCheckViolation(fk))

	uniq := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "topic_courses_pkey"}
	assert.True(t, IsDuplicateKeyError(uniq))
	assert.True(t, IsDuplicateConstraintError(uniq, "topic_courses_pkey"))
	assert.False(t, IsDuplicateConstraintError(uniq, "other"))

	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: CodeCheckViolation}))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: true},
		{name: "network", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, want: true},
		{name: "connection exception class", err: &pgconn.PgError{Code: "08006"}, want: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: true},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConnectionError(tt.err))
		})
	}
}
