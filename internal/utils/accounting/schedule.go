package accounting

import (
	"fmt"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
)

// ValidateTierSchedule rejects a schedule containing a degenerate tier (negative bounds,
// MinAmount >= MaxAmount, negative fee) or any two overlapping tiers. An empty schedule
// is valid.
func ValidateTierSchedule(tiers []domain.ProfitTier) error {
	for i, t := range tiers {
		if t.MinAmount.IsNegative() || t.MaxAmount.IsNegative() {
			return fmt.Errorf("%w: tier %d has negative bounds", apperrors.ErrValidation, i+1)
		}
		if t.MinAmount.GreaterThanOrEqual(t.MaxAmount) {
			return fmt.Errorf("%w: tier %d min amount %s must be less than max amount %s",
				apperrors.ErrValidation, i+1, t.MinAmount.String(), t.MaxAmount.String())
		}
		if t.Fee.IsNegative() {
			return fmt.Errorf("%w: tier %d has a negative fee", apperrors.ErrValidation, i+1)
		}
	}

	sorted := SortTiers(tiers)
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Overlaps(cur) {
			return fmt.Errorf("%w: tier [%s, %s] overlaps tier [%s, %s]", apperrors.ErrValidation,
				prev.MinAmount.String(), prev.MaxAmount.String(), cur.MinAmount.String(), cur.MaxAmount.String())
		}
	}
	return nil
}
