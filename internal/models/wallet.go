package models

import "github.com/shopspring/decimal"

// Wallet is a row of the wallets table. (account_id, kind) is unique.
type Wallet struct {
	WalletID  string          `db:"wallet_id"`
	AccountID string          `db:"account_id"`
	Kind      string          `db:"kind"` // CASH or GCASH
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}
