package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_wallet_app/internal/models"
	"github.com/SscSPs/cash_wallet_app/internal/utils/mapping"
)

const listTiersQuery = `
	SELECT tier_id, account_id, min_amount, max_amount, fee, created_at
	FROM profit_tiers
	WHERE account_id = $1
	ORDER BY min_amount;
`

type PgxProfitTierRepository struct {
	BaseRepository
}

func newPgxProfitTierRepository(pool *pgxpool.Pool) *PgxProfitTierRepository {
	return &PgxProfitTierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfitTierRepository = (*PgxProfitTierRepository)(nil)

func collectTiers(rows pgx.Rows) ([]domain.ProfitTier, error) {
	modelTiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ProfitTier, error) {
		var t models.ProfitTier
		err := row.Scan(&t.TierID, &t.AccountID, &t.MinAmount, &t.MaxAmount, &t.Fee, &t.CreatedAt)
		return t, err
	})
	if err != nil {
		return nil, translateError(err, "failed to scan profit tiers")
	}
	return mapping.ToDomainProfitTierSlice(modelTiers), nil
}

// ListTiers returns the account's schedule ordered by min amount.
func (r *PgxProfitTierRepository) ListTiers(ctx context.Context, accountID string) ([]domain.ProfitTier, error) {
	rows, err := r.Pool.Query(ctx, listTiersQuery, accountID)
	if err != nil {
		return nil, translateError(err, "failed to query profit tiers")
	}
	defer rows.Close()
	return collectTiers(rows)
}

// ListTiersInTx reads the schedule inside tx. Rows are not locked.
func (r *PgxProfitTierRepository) ListTiersInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.ProfitTier, error) {
	rows, err := tx.Query(ctx, listTiersQuery, accountID)
	if err != nil {
		return nil, translateError(err, "failed to query profit tiers")
	}
	defer rows.Close()
	return collectTiers(rows)
}

// lockScheduleQuery serializes schedule writers of one account for the rest of the
// transaction. An advisory lock is used because a row lock on accounts would also
// block the FK checks of concurrent transaction inserts.
const lockScheduleQuery = `SELECT pg_advisory_xact_lock(hashtext('profit_tiers:' || $1));`

// ReplaceTiers deletes the account's schedule and inserts tiers in one transaction.
func (r *PgxProfitTierRepository) ReplaceTiers(ctx context.Context, accountID string, tiers []domain.ProfitTier, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(context.WithoutCancel(ctx), tx)
	}()

	if err := replaceTiersInTx(ctx, tx, accountID, tiers, now); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// replaceTiersInTx takes the account's schedule lock before deleting, so a second
// writer waits and then sees the first writer's rows instead of inserting beside them.
func replaceTiersInTx(ctx context.Context, tx pgx.Tx, accountID string, tiers []domain.ProfitTier, now time.Time) error {
	if _, err := tx.Exec(ctx, lockScheduleQuery, accountID); err != nil {
		return translateError(err, "failed to lock profit tiers")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM profit_tiers WHERE account_id = $1;`, accountID); err != nil {
		return translateError(err, "failed to delete profit tiers")
	}
	if len(tiers) == 0 {
		return nil
	}

	insertQuery := `
		INSERT INTO profit_tiers (tier_id, account_id, min_amount, max_amount, fee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, tier := range tiers {
		m := mapping.ToModelProfitTier(tier)
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		batch.Queue(insertQuery, m.TierID, accountID, m.MinAmount, m.MaxAmount, m.Fee, m.CreatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	for i := range tiers {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateError(err, fmt.Sprintf("failed to insert profit tier %d", i+1))
		}
	}
	if err := br.Close(); err != nil {
		return translateError(err, "failed to close profit tier batch")
	}
	return nil
}
