package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/utils"
	"github.com/shopspring/decimal"
)

// maxReportRange bounds the daily profit report.
const maxReportRange = 366 * 24 * time.Hour

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ProfitSummary aggregates every committed transaction of the account.
func (s *reportingService) ProfitSummary(ctx context.Context, accountID string) (*domain.ProfitSummary, error) {
	summary, err := s.reportingRepo.GetProfitSummary(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve profit summary", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve profit summary: %w", err)
	}

	summary.AverageProfitPerTransaction = decimal.Zero
	if summary.TransactionCount > 0 {
		summary.AverageProfitPerTransaction = utils.RoundMoney(
			summary.TotalProfit.Div(decimal.NewFromInt(summary.TransactionCount)))
	}

	s.LogDebug(ctx, "Profit summary generated",
		slog.String("account_id", accountID),
		slog.Int64("transaction_count", summary.TransactionCount))
	return summary, nil
}

// DailyProfit returns one row per business day with at least one transaction.
func (s *reportingService) DailyProfit(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyProfit, error) {
	if from.After(to) {
		return nil, apperrors.NewValidationError("from date %s is after to date %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	if to.Sub(from) > maxReportRange {
		return nil, apperrors.NewValidationError("date range cannot exceed 366 days")
	}

	rows, err := s.reportingRepo.GetDailyProfit(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve daily profit",
			slog.String("account_id", accountID),
			slog.String("from", from.Format(time.DateOnly)),
			slog.String("to", to.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve daily profit: %w", err)
	}

	s.LogDebug(ctx, "Daily profit report generated",
		slog.String("account_id", accountID),
		slog.Int("row_count", len(rows)))
	return rows, nil
}
