// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// UpdateAssetInput holds the fields to change. Nil fields are left as is.
type UpdateAssetInput struct {
	UserID                   uuid.UUID
	AssetID                  uuid.UUID
	BucketID                 *uuid.UUID
	Ticker                   *string
	Name                     *string
	Quantity                 *decimal.Decimal
	TargetPercentageInBucket *decimal.Decimal
	IsManual                 *bool
	ManualPrice              *decimal.Decimal
}

// UpdateAssetUseCase handles partial asset updates.
type UpdateAssetUseCase struct {
	assetRepo  adapter.AssetRepository
	bucketRepo adapter.InvestmentBucketRepository
	cache      adapter.QueryCache
}

// NewUpdateAssetUseCase creates a new UpdateAssetUseCase instance.
func NewUpdateAssetUseCase(assetRepo adapter.AssetRepository, bucketRepo adapter.InvestmentBucketRepository, cache adapter.QueryCache) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{assetRepo: assetRepo, bucketRepo: bucketRepo, cache: cache}
}

// Execute merges the input into the stored asset. Turning is_manual off
// clears the manual price.
func (uc *UpdateAssetUseCase) Execute(ctx context.Context, input UpdateAssetInput) (*AssetOutput, error) {
	asset, err := uc.assetRepo.FindByID(ctx, input.UserID, input.AssetID)
	if err != nil {
		return nil, assetNotFound(err)
	}

	if input.BucketID != nil && *input.BucketID != asset.BucketID {
		if _, err := uc.bucketRepo.FindByID(ctx, input.UserID, *input.BucketID); err != nil {
			return nil, bucketNotFound(err)
		}
		asset.BucketID = *input.BucketID
	}
	if input.Ticker != nil {
		ticker, err := normalizeTicker(*input.Ticker)
		if err != nil {
			return nil, err
		}
		asset.Ticker = ticker
	}
	if input.Name != nil {
		asset.Name = trimOptional(input.Name)
	}
	if input.Quantity != nil {
		asset.Quantity = *input.Quantity
	}
	if input.TargetPercentageInBucket != nil {
		asset.TargetPercentageInBucket = *input.TargetPercentageInBucket
	}
	if input.IsManual != nil {
		asset.IsManual = *input.IsManual
	}
	if input.ManualPrice != nil {
		asset.ManualPrice = input.ManualPrice
	}
	if !asset.IsManual {
		asset.ManualPrice = nil
	}

	if err := validateHolding(asset.Quantity, asset.TargetPercentageInBucket, asset.ManualPrice); err != nil {
		return nil, err
	}
	asset.UpdatedAt = time.Now().UTC()

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableAssets)

	return toAssetOutput(asset), nil
}
