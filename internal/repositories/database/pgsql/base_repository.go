package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes the repositories translate.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgInvalidText          = "22P02"
	pgLockNotAvailable     = "55P03"
	pgDeadlockDetected     = "40P01"
	pgSerializationFailure = "40001"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
	// LockTimeout bounds every row lock wait inside transactions started by Begin.
	// Zero leaves the server default.
	LockTimeout time.Duration
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, translateError(err, "failed to begin transaction")
	}
	if r.LockTimeout > 0 {
		// SET does not take bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.LockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			return nil, translateError(err, "failed to set lock timeout")
		}
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return translateError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// translateError maps driver errors onto the apperrors vocabulary. Unknown errors
// become a 500 AppError carrying msg.
func translateError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, msg)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable, pgDeadlockDetected, pgSerializationFailure:
			return apperrors.NewConcurrencyError(msg, err)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, msg, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrNotFound, msg, pgErr.ConstraintName)
		case pgInvalidText:
			return fmt.Errorf("%w: %s (malformed identifier)", apperrors.ErrValidation, msg)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrValidation, msg, pgErr.ConstraintName)
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}
