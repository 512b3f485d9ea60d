// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// SimulateContributionInput represents a contribution to plan.
type SimulateContributionInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// SimulateContributionOutput is the suggested split of a contribution.
// Balanced is set when no bucket is below target.
type SimulateContributionOutput struct {
	Amount         decimal.Decimal `json:"amount"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Suggestions    []Suggestion    `json:"suggestions"`
	SuggestedTotal decimal.Decimal `json:"suggested_total"`
	Balanced       bool            `json:"balanced"`
}

// SimulateContributionUseCase plans where a new contribution should go.
// Nothing is written.
type SimulateContributionUseCase struct {
	bucketRepo adapter.InvestmentBucketRepository
	assetRepo  adapter.AssetRepository
	cache      adapter.QueryCache
}

// NewSimulateContributionUseCase creates a new SimulateContributionUseCase instance.
func NewSimulateContributionUseCase(bucketRepo adapter.InvestmentBucketRepository, assetRepo adapter.AssetRepository, cache adapter.QueryCache) *SimulateContributionUseCase {
	return &SimulateContributionUseCase{bucketRepo: bucketRepo, assetRepo: assetRepo, cache: cache}
}

// Execute runs the rebalancer over the user's current holdings.
func (uc *SimulateContributionUseCase) Execute(ctx context.Context, input SimulateContributionInput) (*SimulateContributionOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPortfolioError(domainerror.ErrCodeInvalidContribution,
			"contribution amount must be greater than zero", domainerror.ErrInvalidContribution)
	}

	buckets, assets, err := loadHoldings(ctx, uc.bucketRepo, uc.assetRepo, uc.cache, input.UserID)
	if err != nil {
		return nil, err
	}

	suggestions := Rebalance(input.Amount, buckets, assets)
	output := &SimulateContributionOutput{
		Amount:         input.Amount,
		TotalValue:     decimal.Zero,
		Suggestions:    suggestions,
		SuggestedTotal: decimal.Zero,
		Balanced:       len(suggestions) == 0,
	}
	for _, a := range assets {
		output.TotalValue = output.TotalValue.Add(a.Value())
	}
	for _, s := range suggestions {
		output.SuggestedTotal = output.SuggestedTotal.Add(s.Amount)
	}
	return output, nil
}
