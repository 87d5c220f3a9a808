package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProfitTierRepository persists per-account fee schedules.
type ProfitTierRepository interface {
	// ListTiers returns the account's schedule ordered by min amount.
	ListTiers(ctx context.Context, accountID string) ([]domain.ProfitTier, error)

	// ListTiersInTx reads the schedule within tx without locking the rows.
	ListTiersInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.ProfitTier, error)

	// ReplaceTiers deletes every tier of the account and inserts tiers in one
	// transaction. An empty slice only deletes.
	ReplaceTiers(ctx context.Context, accountID string, tiers []domain.ProfitTier, now time.Time) error
}

// ProfitTierCache holds recently read schedules for the preview path.
// Implementations must treat a cache failure as a miss.
type ProfitTierCache interface {
	// Get returns the cached schedule and the generation it was looked up under.
	Get(ctx context.Context, accountID string) (tiers []domain.ProfitTier, generation string, ok bool)

	// Set stores tiers under the generation returned by a missed Get. A value
	// stored under a generation that Invalidate has since moved past is never
	// returned. An empty generation stores nothing.
	Set(ctx context.Context, accountID, generation string, tiers []domain.ProfitTier)

	// Invalidate moves the account to a new generation.
	Invalidate(ctx context.Context, accountID string)
}
