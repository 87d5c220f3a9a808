package dto

import (
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitTierRequest is one band of a fee schedule as sent by the client.
type ProfitTierRequest struct {
	MinAmount *decimal.Decimal `json:"minAmount" binding:"required" swaggertype:"string" example:"1"`
	MaxAmount *decimal.Decimal `json:"maxAmount" binding:"required" swaggertype:"string" example:"45"`
	Fee       *decimal.Decimal `json:"fee" binding:"required" swaggertype:"string" example:"5"`
}

// SaveProfitTiersRequest replaces the whole schedule. An empty list deletes every tier.
type SaveProfitTiersRequest struct {
	ProfitTiers []ProfitTierRequest `json:"profitTiers" binding:"dive"`
}

// ProfitTierResponse defines the data returned for a tier.
type ProfitTierResponse struct {
	TierID    string          `json:"tierID"`
	MinAmount decimal.Decimal `json:"minAmount"`
	MaxAmount decimal.Decimal `json:"maxAmount"`
	Fee       decimal.Decimal `json:"fee"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ProfitPreviewResponse is the fee that a transfer of Amount would earn now.
type ProfitPreviewResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Profit decimal.Decimal `json:"profit"`
}

// ToProfitTierResponses converts a slice of domain.ProfitTier to []ProfitTierResponse.
func ToProfitTierResponses(tiers []domain.ProfitTier) []ProfitTierResponse {
	responses := make([]ProfitTierResponse, len(tiers))
	for i, t := range tiers {
		responses[i] = ProfitTierResponse{
			TierID:    t.TierID,
			MinAmount: t.MinAmount,
			MaxAmount: t.MaxAmount,
			Fee:       t.Fee,
			CreatedAt: t.CreatedAt,
		}
	}
	return responses
}
