package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitSummary aggregates all committed transactions of an account.
type ProfitSummary struct {
	TotalProfit                 decimal.Decimal `json:"totalProfit"`
	CashInProfit                decimal.Decimal `json:"cashInProfit"`
	CashOutProfit               decimal.Decimal `json:"cashOutProfit"`
	TransactionCount            int64           `json:"transactionCount"`
	AverageProfitPerTransaction decimal.Decimal `json:"averageProfitPerTransaction"`
	TotalVolume                 decimal.Decimal `json:"totalVolume"`
}

// DailyProfit is the profit earned on one business day.
type DailyProfit struct {
	Date             time.Time       `json:"date"`
	Profit           decimal.Decimal `json:"profit"`
	Volume           decimal.Decimal `json:"volume"`
	TransactionCount int64           `json:"transactionCount"`
}
