// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// DeleteBucketUseCase removes a bucket together with its assets.
type DeleteBucketUseCase struct {
	bucketRepo adapter.InvestmentBucketRepository
	cache      adapter.QueryCache
}

// NewDeleteBucketUseCase creates a new DeleteBucketUseCase instance.
func NewDeleteBucketUseCase(bucketRepo adapter.InvestmentBucketRepository, cache adapter.QueryCache) *DeleteBucketUseCase {
	return &DeleteBucketUseCase{bucketRepo: bucketRepo, cache: cache}
}

// Execute deletes the bucket and invalidates both buckets and assets.
func (uc *DeleteBucketUseCase) Execute(ctx context.Context, userID, bucketID uuid.UUID) error {
	if _, err := uc.bucketRepo.FindByID(ctx, userID, bucketID); err != nil {
		return bucketNotFound(err)
	}
	if err := uc.bucketRepo.Delete(ctx, userID, bucketID); err != nil {
		return fmt.Errorf("failed to delete bucket: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, userID, adapter.TableInvestmentBuckets, adapter.TableAssets)
	return nil
}
