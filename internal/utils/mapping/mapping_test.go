package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/models"
	"github.com/SscSPs/cash_wallet_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainWallet_ConvertsKind(t *testing.T) {
	now := time.Now().UTC()
	m := models.Wallet{
		WalletID:    "w-1",
		AccountID:   "acc-1",
		Kind:        "GCASH",
		Balance:     decimal.RequireFromString("12.50"),
		AuditFields: models.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	d := mapping.ToDomainWallet(m)

	assert.Equal(t, domain.WalletGCash, d.Kind)
	assert.True(t, d.Balance.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, now, d.UpdatedAt)
	assert.Equal(t, m, mapping.ToModelWallet(d))
}

func TestToModelTransaction_KeepsFeePolicy(t *testing.T) {
	d := domain.Transaction{
		TransactionID:   "t-1",
		AccountID:       "acc-1",
		TransactionType: domain.CashOut,
		Amount:          decimal.NewFromInt(500),
		Profit:          decimal.NewFromInt(15),
		FeeSeparated:    true,
		TransactionCode: "TXN-ABC123-LXYZ",
	}

	m := mapping.ToModelTransaction(d)

	assert.Equal(t, "CASH_OUT", m.TransactionType)
	assert.True(t, m.FeeSeparated)
	assert.Equal(t, d, mapping.ToDomainTransaction(m))
}
