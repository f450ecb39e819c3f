package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
	"github.com/khoury-cyber-guide/backend/internal/pkg/dberrors"
	"github.com/khoury-cyber-guide/backend/internal/pkg/logger"
)

// ResourceNotFound returns the not found error of a listing kind
func ResourceNotFound(kind models.ResourceKind) error {
	return apperrors.NewResourceNotFoundError(kind.Label() + " not found")
}

// storageError logs err and wraps it. Connectivity failures become
// ErrStorageUnavailable so the backend detail stays out of responses.
func storageError(ctx context.Context, err error, msg string) error {
	logger.FromContext(ctx).Error().Err(err).Msg(msg)

	if errors.Is(err, apperrors.ErrStorageUnavailable) {
		return err
	}
	if dberrors.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", apperrors.ErrStorageUnavailable, msg)
	}
	if dberrors.IsCheckViolation(err) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// linkError maps a foreign key violation on a join table to the not found
// error of the side whose id is missing.
func linkError(ctx context.Context, rel Relation, err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == dberrors.CodeForeignKeyViolation {
		if pgErr.ConstraintName == rel.Table+"_"+rel.Right.Column+"_fkey" {
			return rel.Right.NotFound
		}
		return rel.Left.NotFound
	}
	return storageError(ctx, err, msg)
}
