// Package portfolio contains the investment bucket and asset use cases,
// the allocation overview and the contribution simulator.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// Field bounds.
const (
	MaxBucketNameLength = 100
	MaxTickerLength     = 20
)

var hundred = decimal.NewFromInt(100)

// BucketOutput represents an investment bucket in the output.
type BucketOutput struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	TargetPercentage decimal.Decimal `json:"target_percentage"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AssetOutput represents an asset in the output.
type AssetOutput struct {
	ID                       uuid.UUID        `json:"id"`
	BucketID                 uuid.UUID        `json:"bucket_id"`
	Ticker                   string           `json:"ticker"`
	Name                     *string          `json:"name"`
	Quantity                 decimal.Decimal  `json:"quantity"`
	TargetPercentageInBucket decimal.Decimal  `json:"target_percentage_in_bucket"`
	IsManual                 bool             `json:"is_manual"`
	ManualPrice              *decimal.Decimal `json:"manual_price"`
	LastPriceFetch           *decimal.Decimal `json:"last_price_fetch"`
	Price                    decimal.Decimal  `json:"price"`
	Value                    decimal.Decimal  `json:"value"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

func toBucketOutput(b *entity.InvestmentBucket) *BucketOutput {
	return &BucketOutput{
		ID:               b.ID,
		Name:             b.Name,
		TargetPercentage: b.TargetPercentage,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func toAssetOutput(a *entity.Asset) *AssetOutput {
	return &AssetOutput{
		ID:                       a.ID,
		BucketID:                 a.BucketID,
		Ticker:                   a.Ticker,
		Name:                     a.Name,
		Quantity:                 a.Quantity,
		TargetPercentageInBucket: a.TargetPercentageInBucket,
		IsManual:                 a.IsManual,
		ManualPrice:              a.ManualPrice,
		LastPriceFetch:           a.LastPriceFetch,
		Price:                    a.Price(),
		Value:                    a.Value(),
		UpdatedAt:                a.UpdatedAt,
	}
}

func isPercentage(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundred)
}

func invalidPercentage(field string) error {
	return domainerror.NewPortfolioError(domainerror.ErrCodeInvalidPercentage,
		field+" must be between 0 and 100", domainerror.ErrInvalidPercentage)
}

func bucketNotFound(err error) error {
	if errors.Is(err, domainerror.ErrBucketNotFound) {
		return domainerror.NewPortfolioError(domainerror.ErrCodeBucketNotFound, "investment bucket not found", domainerror.ErrBucketNotFound)
	}
	return fmt.Errorf("failed to find bucket: %w", err)
}

func assetNotFound(err error) error {
	if errors.Is(err, domainerror.ErrAssetNotFound) {
		return domainerror.NewPortfolioError(domainerror.ErrCodeAssetNotFound, "asset not found", domainerror.ErrAssetNotFound)
	}
	return fmt.Errorf("failed to find asset: %w", err)
}

// loadHoldings reads buckets and assets concurrently through the query cache.
func loadHoldings(ctx context.Context, bucketRepo adapter.InvestmentBucketRepository, assetRepo adapter.AssetRepository,
	cache adapter.QueryCache, userID uuid.UUID) ([]*entity.InvestmentBucket, []*entity.Asset, error) {
	var (
		buckets []*entity.InvestmentBucket
		assets  []*entity.Asset
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buckets, err = readthrough.Load(gctx, cache, userID, adapter.TableInvestmentBuckets, "entities",
			func(ctx context.Context) ([]*entity.InvestmentBucket, error) {
				return bucketRepo.FindByUser(ctx, userID)
			})
		if err != nil {
			return fmt.Errorf("failed to load buckets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		assets, err = readthrough.Load(gctx, cache, userID, adapter.TableAssets, "entities",
			func(ctx context.Context) ([]*entity.Asset, error) {
				return assetRepo.FindByUser(ctx, userID)
			})
		if err != nil {
			return fmt.Errorf("failed to load assets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return buckets, assets, nil
}
