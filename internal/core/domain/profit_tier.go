package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitTier is one band of an account's fee schedule. A transaction whose amount
// falls within [MinAmount, MaxAmount] (both inclusive) is charged Fee.
type ProfitTier struct {
	TierID    string          `json:"tierID"`
	AccountID string          `json:"accountID"`
	MinAmount decimal.Decimal `json:"minAmount"`
	MaxAmount decimal.Decimal `json:"maxAmount"`
	Fee       decimal.Decimal `json:"fee"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Contains reports whether amount falls inside the tier bounds.
func (t ProfitTier) Contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(t.MinAmount) && amount.LessThanOrEqual(t.MaxAmount)
}

// Overlaps reports whether two tiers share at least one amount.
func (t ProfitTier) Overlaps(other ProfitTier) bool {
	return t.MinAmount.LessThanOrEqual(other.MaxAmount) && other.MinAmount.LessThanOrEqual(t.MaxAmount)
}
