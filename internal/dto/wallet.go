package dto

import (
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to open a wallet explicitly.
type CreateWalletRequest struct {
	Kind           string           `json:"kind" binding:"required" example:"CASH"`
	OpeningBalance *decimal.Decimal `json:"balance,omitempty" swaggertype:"string" example:"1000.00"`
}

// AdjustBalanceRequest sets a wallet to an absolute balance.
type AdjustBalanceRequest struct {
	Kind    string           `json:"kind" binding:"required" example:"GCASH"`
	Balance *decimal.Decimal `json:"balance" binding:"required" swaggertype:"string" example:"250.00"`
}

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID  string          `json:"walletID"`
	Kind      string          `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BalancesResponse defines the combined balances of both wallets.
type BalancesResponse struct {
	Cash  decimal.Decimal `json:"cash"`
	GCash decimal.Decimal `json:"gcash"`
	Total decimal.Decimal `json:"total"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:  w.WalletID,
		Kind:      string(w.Kind),
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToWalletResponses converts a slice of domain.Wallet to []WalletResponse.
func ToWalletResponses(wallets []domain.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = ToWalletResponse(&wallets[i])
	}
	return responses
}

// ToBalancesResponse converts domain.Balances to BalancesResponse DTO.
func ToBalancesResponse(b *domain.Balances) BalancesResponse {
	return BalancesResponse{
		Cash:  b.Cash,
		GCash: b.GCash,
		Total: b.Cash.Add(b.GCash),
	}
}
