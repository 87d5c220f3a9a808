package services

import (
	"context"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ProfitSvcFacade manages fee schedules and prices amounts against them.
type ProfitSvcFacade interface {
	// SaveTiers validates and replaces the account's whole schedule.
	SaveTiers(ctx context.Context, accountID string, req dto.SaveProfitTiersRequest) ([]domain.ProfitTier, error)

	// GetTiers returns the account's schedule ordered by min amount.
	GetTiers(ctx context.Context, accountID string) ([]domain.ProfitTier, error)

	// ComputeProfit prices amount against the current schedule without moving money.
	ComputeProfit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error)
}
