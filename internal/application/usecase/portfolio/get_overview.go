// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
)

// Allocation tolerances.
var (
	allocationTolerance = decimal.NewFromFloat(0.01)
	belowTargetMargin   = decimal.NewFromInt(-5)
)

// AssetAllocation is an asset's share of its bucket.
type AssetAllocation struct {
	*AssetOutput
	CurrentPercentageInBucket decimal.Decimal `json:"current_percentage_in_bucket"`
}

// BucketAllocation compares a bucket's share of the portfolio to its target.
type BucketAllocation struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Value             decimal.Decimal    `json:"value"`
	CurrentPercentage decimal.Decimal    `json:"current_percentage"`
	TargetPercentage  decimal.Decimal    `json:"target_percentage"`
	Difference        decimal.Decimal    `json:"difference"`
	BelowTarget       bool               `json:"below_target"`
	Assets            []*AssetAllocation `json:"assets"`
}

// PortfolioOverview is the full allocation picture.
type PortfolioOverview struct {
	TotalValue      decimal.Decimal     `json:"total_value"`
	TargetSum       decimal.Decimal     `json:"target_sum"`
	AllocationValid bool                `json:"allocation_valid"`
	Buckets         []*BucketAllocation `json:"buckets"`
}

// BuildOverview computes current allocation per bucket and per asset.
// Percentages are zero when the denominator is zero.
func BuildOverview(buckets []*entity.InvestmentBucket, assets []*entity.Asset) *PortfolioOverview {
	overview := &PortfolioOverview{
		TotalValue: decimal.Zero,
		TargetSum:  decimal.Zero,
		Buckets:    make([]*BucketAllocation, 0, len(buckets)),
	}

	byBucket := make(map[uuid.UUID][]*entity.Asset, len(buckets))
	for _, a := range assets {
		overview.TotalValue = overview.TotalValue.Add(a.Value())
		byBucket[a.BucketID] = append(byBucket[a.BucketID], a)
	}

	for _, b := range buckets {
		overview.TargetSum = overview.TargetSum.Add(b.TargetPercentage)

		value := decimal.Zero
		for _, a := range byBucket[b.ID] {
			value = value.Add(a.Value())
		}
		// Negative difference means the bucket is underweight
		current := share(value, overview.TotalValue)
		difference := current.Sub(b.TargetPercentage)

		allocation := &BucketAllocation{
			ID:                b.ID,
			Name:              b.Name,
			Value:             value,
			CurrentPercentage: current,
			TargetPercentage:  b.TargetPercentage,
			Difference:        difference,
			BelowTarget:       difference.LessThan(belowTargetMargin),
			Assets:            make([]*AssetAllocation, 0, len(byBucket[b.ID])),
		}
		for _, a := range byBucket[b.ID] {
			allocation.Assets = append(allocation.Assets, &AssetAllocation{
				AssetOutput:               toAssetOutput(a),
				CurrentPercentageInBucket: share(a.Value(), value),
			})
		}
		overview.Buckets = append(overview.Buckets, allocation)
	}

	// Targets should add up to 100%
	overview.AllocationValid = overview.TargetSum.Sub(hundred).Abs().LessThan(allocationTolerance)
	return overview
}

func share(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// GetOverviewUseCase reports the portfolio allocation.
type GetOverviewUseCase struct {
	bucketRepo adapter.InvestmentBucketRepository
	assetRepo  adapter.AssetRepository
	cache      adapter.QueryCache
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(bucketRepo adapter.InvestmentBucketRepository, assetRepo adapter.AssetRepository, cache adapter.QueryCache) *GetOverviewUseCase {
	return &GetOverviewUseCase{bucketRepo: bucketRepo, assetRepo: assetRepo, cache: cache}
}

// Execute loads the holdings and builds the overview.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, userID uuid.UUID) (*PortfolioOverview, error) {
	buckets, assets, err := loadHoldings(ctx, uc.bucketRepo, uc.assetRepo, uc.cache, userID)
	if err != nil {
		return nil, err
	}
	return BuildOverview(buckets, assets), nil
}
