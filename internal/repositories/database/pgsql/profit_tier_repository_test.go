package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
)

// recordingTx captures Exec statements. Methods it does not override panic via the nil embedded Tx.
type recordingTx struct {
	pgx.Tx
	statements []string
	args       [][]any
	failOn     int
}

func (tx *recordingTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.statements = append(tx.statements, sql)
	tx.args = append(tx.args, args)
	if tx.failOn == len(tx.statements) {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: pgLockNotAvailable}
	}
	return pgconn.CommandTag{}, nil
}

func TestReplaceTiersInTx_LocksScheduleBeforeDelete(t *testing.T) {
	tx := &recordingTx{}

	err := replaceTiersInTx(context.Background(), tx, "acc-1", nil, time.Now())

	require.NoError(t, err)
	require.Len(t, tx.statements, 2)
	assert.Equal(t, lockScheduleQuery, tx.statements[0])
	assert.Contains(t, tx.statements[0], "pg_advisory_xact_lock")
	assert.Contains(t, tx.statements[1], "DELETE FROM profit_tiers")
	assert.Equal(t, []any{"acc-1"}, tx.args[0])
	assert.Equal(t, []any{"acc-1"}, tx.args[1])
}

func TestReplaceTiersInTx_LockFailureSkipsDelete(t *testing.T) {
	tx := &recordingTx{failOn: 1}

	err := replaceTiersInTx(context.Background(), tx, "acc-1", nil, time.Now())

	assert.ErrorIs(t, err, apperrors.ErrConcurrency)
	assert.Len(t, tx.statements, 1)
}
