package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
)

// ReportingRepository runs read-side aggregates over the transactions table.
type ReportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) *ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetProfitSummary aggregates every transaction of the account. The average is left
// to the caller.
func (r *ReportingRepository) GetProfitSummary(ctx context.Context, accountID string) (*domain.ProfitSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(profit), 0),
			COALESCE(SUM(profit) FILTER (WHERE transaction_type = 'CASH_IN'), 0),
			COALESCE(SUM(profit) FILTER (WHERE transaction_type = 'CASH_OUT'), 0),
			COUNT(*),
			COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE account_id = $1;
	`
	var s domain.ProfitSummary
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&s.TotalProfit,
		&s.CashInProfit,
		&s.CashOutProfit,
		&s.TransactionCount,
		&s.TotalVolume,
	)
	if err != nil {
		return nil, translateError(err, "failed to aggregate profit summary")
	}
	return &s, nil
}

// GetDailyProfit groups transactions by calendar day (UTC) within [from, to].
func (r *ReportingRepository) GetDailyProfit(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyProfit, error) {
	query := `
		SELECT
			(transaction_date AT TIME ZONE 'UTC')::date AS day,
			SUM(profit),
			SUM(amount),
			COUNT(*)
		FROM transactions
		WHERE account_id = $1
		  AND transaction_date >= $2
		  AND transaction_date < $3
		GROUP BY day
		ORDER BY day;
	`
	// to is inclusive of the whole day.
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := r.Pool.Query(ctx, query, accountID, start, end)
	if err != nil {
		return nil, translateError(err, "failed to query daily profit")
	}
	defer rows.Close()

	days, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyProfit, error) {
		var d domain.DailyProfit
		err := row.Scan(&d.Date, &d.Profit, &d.Volume, &d.TransactionCount)
		return d, err
	})
	if err != nil {
		return nil, translateError(err, "failed to scan daily profit")
	}
	return days, nil
}
