package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitTier is a row of the profit_tiers table. Tiers are never updated in place.
type ProfitTier struct {
	TierID    string          `db:"tier_id"`
	AccountID string          `db:"account_id"`
	MinAmount decimal.Decimal `db:"min_amount"`
	MaxAmount decimal.Decimal `db:"max_amount"`
	Fee       decimal.Decimal `db:"fee"`
	CreatedAt time.Time       `db:"created_at"`
}
