package dto

import (
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by report query parameters and rows.
const DateLayout = "2006-01-02"

// ProfitSummaryResponse represents the profit summary report response
type ProfitSummaryResponse struct {
	TotalProfit                 decimal.Decimal `json:"totalProfit"`
	CashInProfit                decimal.Decimal `json:"cashInProfit"`
	CashOutProfit               decimal.Decimal `json:"cashOutProfit"`
	TransactionCount            int64           `json:"transactionCount"`
	AverageProfitPerTransaction decimal.Decimal `json:"averageProfitPerTransaction"`
	TotalVolume                 decimal.Decimal `json:"totalVolume"`
}

// DailyProfitRowResponse represents one day of the daily profit report
type DailyProfitRowResponse struct {
	Date             string          `json:"date"`
	Profit           decimal.Decimal `json:"profit"`
	Volume           decimal.Decimal `json:"volume"`
	TransactionCount int64           `json:"transactionCount"`
}

// DailyProfitResponse represents the daily profit report response
type DailyProfitResponse struct {
	FromDate string                   `json:"fromDate"`
	ToDate   string                   `json:"toDate"`
	Rows     []DailyProfitRowResponse `json:"rows"`
	Totals   struct {
		Profit decimal.Decimal `json:"profit"`
		Volume decimal.Decimal `json:"volume"`
	} `json:"totals"`
}

// ToProfitSummaryResponse converts a domain.ProfitSummary to its DTO.
func ToProfitSummaryResponse(s *domain.ProfitSummary) ProfitSummaryResponse {
	return ProfitSummaryResponse{
		TotalProfit:                 s.TotalProfit,
		CashInProfit:                s.CashInProfit,
		CashOutProfit:               s.CashOutProfit,
		TransactionCount:            s.TransactionCount,
		AverageProfitPerTransaction: s.AverageProfitPerTransaction,
		TotalVolume:                 s.TotalVolume,
	}
}

// ToDailyProfitResponse converts daily rows to the report DTO and totals them.
func ToDailyProfitResponse(rows []domain.DailyProfit, fromDate, toDate time.Time) DailyProfitResponse {
	resp := DailyProfitResponse{
		FromDate: fromDate.Format(DateLayout),
		ToDate:   toDate.Format(DateLayout),
		Rows:     make([]DailyProfitRowResponse, len(rows)),
	}
	resp.Totals.Profit = decimal.Zero
	resp.Totals.Volume = decimal.Zero
	for i, r := range rows {
		resp.Rows[i] = DailyProfitRowResponse{
			Date:             r.Date.Format(DateLayout),
			Profit:           r.Profit,
			Volume:           r.Volume,
			TransactionCount: r.TransactionCount,
		}
		resp.Totals.Profit = resp.Totals.Profit.Add(r.Profit)
		resp.Totals.Volume = resp.Totals.Volume.Add(r.Volume)
	}
	return resp
}
