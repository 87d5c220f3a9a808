package mapping

import (
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:    d.WalletID,
		AccountID:   d.AccountID,
		Kind:        string(d.Kind),
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:    m.WalletID,
		AccountID:   m.AccountID,
		Kind:        domain.WalletKind(m.Kind),
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWalletSlice converts a slice of model Wallets to a slice of domain Wallets
func ToDomainWalletSlice(ms []models.Wallet) []domain.Wallet {
	ds := make([]domain.Wallet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWallet(m)
	}
	return ds
}
