package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
)

// ReportingRepository defines read-side aggregates over committed transactions
type ReportingRepository interface {
	// GetProfitSummary aggregates every transaction of the account.
	GetProfitSummary(ctx context.Context, accountID string) (*domain.ProfitSummary, error)

	// GetDailyProfit groups transactions by transaction date within [from, to].
	GetDailyProfit(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyProfit, error)
}
