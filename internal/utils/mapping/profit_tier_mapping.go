package mapping

import (
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/models"
)

// ToModelProfitTier converts a domain ProfitTier to a model ProfitTier
func ToModelProfitTier(d domain.ProfitTier) models.ProfitTier {
	return models.ProfitTier{
		TierID:    d.TierID,
		AccountID: d.AccountID,
		MinAmount: d.MinAmount,
		MaxAmount: d.MaxAmount,
		Fee:       d.Fee,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainProfitTier converts a model ProfitTier to a domain ProfitTier
func ToDomainProfitTier(m models.ProfitTier) domain.ProfitTier {
	return domain.ProfitTier{
		TierID:    m.TierID,
		AccountID: m.AccountID,
		MinAmount: m.MinAmount,
		MaxAmount: m.MaxAmount,
		Fee:       m.Fee,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainProfitTierSlice converts a slice of model ProfitTiers to a slice of domain ProfitTiers
func ToDomainProfitTierSlice(ms []models.ProfitTier) []domain.ProfitTier {
	ds := make([]domain.ProfitTier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfitTier(m)
	}
	return ds
}
