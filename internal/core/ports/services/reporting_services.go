package services

import (
	"context"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
)

// ReportingService defines operations for generating profit reports
type ReportingService interface {
	// ProfitSummary aggregates all transactions of the account
	ProfitSummary(ctx context.Context, accountID string) (*domain.ProfitSummary, error)

	// DailyProfit returns profit per business day within [from, to]
	DailyProfit(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyProfit, error)
}
