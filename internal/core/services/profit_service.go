package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
	"github.com/SscSPs/cash_wallet_app/internal/utils/accounting"
)

// profitService manages fee schedules. Reads go through the tier cache; the transfer
// engine reads the schedule directly inside its own transaction.
type profitService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	tierRepo    portsrepo.ProfitTierRepository
	cache       portsrepo.ProfitTierCache
}

// NewProfitService creates a new profit service. A nil cache disables caching.
func NewProfitService(accountRepo portsrepo.AccountReader, tierRepo portsrepo.ProfitTierRepository, cache portsrepo.ProfitTierCache) portssvc.ProfitSvcFacade {
	if cache == nil {
		cache = noopTierCache{}
	}
	return &profitService{
		accountRepo: accountRepo,
		tierRepo:    tierRepo,
		cache:       cache,
	}
}

var _ portssvc.ProfitSvcFacade = (*profitService)(nil)

// SaveTiers validates the whole batch before touching storage, then replaces the
// account's schedule atomically.
func (s *profitService) SaveTiers(ctx context.Context, accountID string, req dto.SaveProfitTiersRequest) ([]domain.ProfitTier, error) {
	now := s.Now()
	tiers := make([]domain.ProfitTier, 0, len(req.ProfitTiers))
	for i, t := range req.ProfitTiers {
		if t.MinAmount == nil || t.MaxAmount == nil || t.Fee == nil {
			return nil, apperrors.NewValidationError("tier %d requires minAmount, maxAmount and fee", i+1)
		}
		tiers = append(tiers, domain.ProfitTier{
			TierID:    uuid.NewString(),
			AccountID: accountID,
			MinAmount: *t.MinAmount,
			MaxAmount: *t.MaxAmount,
			Fee:       *t.Fee,
			CreatedAt: now,
		})
	}

	if err := accounting.ValidateTierSchedule(tiers); err != nil {
		s.GetLogger(ctx).Warn("Profit tiers rejected", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}

	exists, err := s.accountRepo.AccountExists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("account not found")
	}

	if err := s.tierRepo.ReplaceTiers(ctx, accountID, tiers, now); err != nil {
		s.LogError(ctx, err, "Failed to replace profit tiers", slog.String("account_id", accountID))
		return nil, err
	}
	s.cache.Invalidate(ctx, accountID)

	s.LogInfo(ctx, "Profit tiers saved", slog.String("account_id", accountID), slog.Int("tier_count", len(tiers)))
	return accounting.SortTiers(tiers), nil
}

// GetTiers returns the schedule ordered by min amount.
func (s *profitService) GetTiers(ctx context.Context, accountID string) ([]domain.ProfitTier, error) {
	cached, generation, ok := s.cache.Get(ctx, accountID)
	if ok {
		s.LogDebug(ctx, "Profit tiers served from cache", slog.String("account_id", accountID))
		return accounting.SortTiers(cached), nil
	}

	tiers, err := s.tierRepo.ListTiers(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list profit tiers", slog.String("account_id", accountID))
		return nil, err
	}
	sorted := accounting.SortTiers(tiers)
	s.cache.Set(ctx, accountID, generation, sorted)
	return sorted, nil
}

// ComputeProfit prices amount against the account's current schedule.
func (s *profitService) ComputeProfit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError("amount must be greater than zero")
	}
	tiers, err := s.GetTiers(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	profit, err := accounting.CalculateProfit(amount, tiers)
	if err != nil {
		if errors.Is(err, accounting.ErrInvalidSchedule) {
			return decimal.Zero, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		return decimal.Zero, err
	}
	return profit, nil
}

type noopTierCache struct{}

func (noopTierCache) Get(context.Context, string) ([]domain.ProfitTier, string, bool) {
	return nil, "", false
}
func (noopTierCache) Set(context.Context, string, string, []domain.ProfitTier) {}
func (noopTierCache) Invalidate(context.Context, string)                       {}
