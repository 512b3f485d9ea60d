// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// DeleteAssetUseCase handles asset deletion logic.
type DeleteAssetUseCase struct {
	assetRepo adapter.AssetRepository
	cache     adapter.QueryCache
}

// NewDeleteAssetUseCase creates a new DeleteAssetUseCase instance.
func NewDeleteAssetUseCase(assetRepo adapter.AssetRepository, cache adapter.QueryCache) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{assetRepo: assetRepo, cache: cache}
}

// Execute deletes the asset.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, userID, assetID uuid.UUID) error {
	if _, err := uc.assetRepo.FindByID(ctx, userID, assetID); err != nil {
		return assetNotFound(err)
	}
	if err := uc.assetRepo.Delete(ctx, userID, assetID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, userID, adapter.TableAssets)
	return nil
}
