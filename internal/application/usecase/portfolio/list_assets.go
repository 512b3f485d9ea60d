// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// ListAssetsUseCase lists assets most recently updated first.
type ListAssetsUseCase struct {
	assetRepo adapter.AssetRepository
	cache     adapter.QueryCache
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assetRepo adapter.AssetRepository, cache adapter.QueryCache) *ListAssetsUseCase {
	return &ListAssetsUseCase{assetRepo: assetRepo, cache: cache}
}

// Execute returns every asset of the user with its price and value.
func (uc *ListAssetsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*AssetOutput, error) {
	return readthrough.Load(ctx, uc.cache, userID, adapter.TableAssets, "list",
		func(ctx context.Context) ([]*AssetOutput, error) {
			assets, err := uc.assetRepo.FindByUser(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to list assets: %w", err)
			}
			out := make([]*AssetOutput, len(assets))
			for i, a := range assets {
				out[i] = toAssetOutput(a)
			}
			return out, nil
		})
}
