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
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// UpdateAssetPriceInput sets the manual price of an asset.
type UpdateAssetPriceInput struct {
	UserID  uuid.UUID
	AssetID uuid.UUID
	Price   decimal.Decimal
}

// UpdateAssetPriceUseCase records a manually entered price.
type UpdateAssetPriceUseCase struct {
	assetRepo adapter.AssetRepository
	cache     adapter.QueryCache
}

// NewUpdateAssetPriceUseCase creates a new UpdateAssetPriceUseCase instance.
func NewUpdateAssetPriceUseCase(assetRepo adapter.AssetRepository, cache adapter.QueryCache) *UpdateAssetPriceUseCase {
	return &UpdateAssetPriceUseCase{assetRepo: assetRepo, cache: cache}
}

// Execute marks the asset as manually priced at the given price.
func (uc *UpdateAssetPriceUseCase) Execute(ctx context.Context, input UpdateAssetPriceInput) (*AssetOutput, error) {
	if input.Price.IsNegative() {
		return nil, domainerror.NewPortfolioError(domainerror.ErrCodeInvalidPrice, "price must not be negative", domainerror.ErrInvalidPrice)
	}

	asset, err := uc.assetRepo.FindByID(ctx, input.UserID, input.AssetID)
	if err != nil {
		return nil, assetNotFound(err)
	}

	price := input.Price
	asset.IsManual = true
	asset.ManualPrice = &price
	asset.UpdatedAt = time.Now().UTC()

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset price: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableAssets)

	return toAssetOutput(asset), nil
}
