package accounting

import (
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidSchedule is returned when a stored schedule cannot be priced, e.g. a top
// tier whose MaxAmount is not positive would make the overflow loop spin forever.
var ErrInvalidSchedule = errors.New("invalid profit tier schedule")

// SortTiers returns a copy of tiers ordered by MinAmount ascending.
func SortTiers(tiers []domain.ProfitTier) []domain.ProfitTier {
	sorted := make([]domain.ProfitTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinAmount.LessThan(sorted[j].MinAmount)
	})
	return sorted
}

// CalculateProfit returns the fee owed for amount under the given schedule.
//
// Amounts up to the largest MaxAmount are priced by the single tier containing them
// (0 when they fall in a gap). Larger amounts are split into full blocks of that
// MaxAmount, each charged the top tier's fee, and the remainder is priced normally.
// The schedule is not modified.
func CalculateProfit(amount decimal.Decimal, tiers []domain.ProfitTier) (decimal.Decimal, error) {
	if len(tiers) == 0 {
		return decimal.Zero, nil
	}

	sorted := SortTiers(tiers)
	highest := sorted[0]
	for _, t := range sorted[1:] {
		if t.MaxAmount.GreaterThan(highest.MaxAmount) {
			highest = t
		}
	}

	block := highest.MaxAmount
	if !block.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: top tier max amount is %s", ErrInvalidSchedule, block.String())
	}

	total := decimal.Zero
	remaining := amount
	if remaining.GreaterThan(block) {
		// Whole blocks at once; equivalent to subtracting one block per iteration while
		// remaining > block, without iterating for very large amounts.
		blocks, rem := remaining.Sub(block).QuoRem(block, 0)
		if !rem.IsZero() {
			blocks = blocks.Add(decimal.NewFromInt(1))
		}
		total = total.Add(highest.Fee.Mul(blocks))
		remaining = remaining.Sub(block.Mul(blocks))
	}

	return total.Add(lookupFee(remaining, sorted)), nil
}

func lookupFee(amount decimal.Decimal, sorted []domain.ProfitTier) decimal.Decimal {
	for _, t := range sorted {
		if t.Contains(amount) {
			return t.Fee
		}
	}
	return decimal.Zero
}
