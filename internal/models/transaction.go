package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the append-only transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	TransactionType string          `db:"transaction_type"` // CASH_IN or CASH_OUT
	Amount          decimal.Decimal `db:"amount"`
	Profit          decimal.Decimal `db:"profit"`
	FeeSeparated    bool            `db:"fee_separated"`
	TransactionCode string          `db:"transaction_code"`
	TransactionDate time.Time       `db:"transaction_date"`
	ReferenceNumber string          `db:"reference_number"`
	CustomerName    string          `db:"customer_name"`
	CustomerPhone   string          `db:"customer_phone"`
	Description     string          `db:"description"`
	CreatedAt       time.Time       `db:"created_at"`
}
