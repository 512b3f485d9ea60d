// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// ListBucketsUseCase lists buckets oldest first.
type ListBucketsUseCase struct {
	bucketRepo adapter.InvestmentBucketRepository
	cache      adapter.QueryCache
}

// NewListBucketsUseCase creates a new ListBucketsUseCase instance.
func NewListBucketsUseCase(bucketRepo adapter.InvestmentBucketRepository, cache adapter.QueryCache) *ListBucketsUseCase {
	return &ListBucketsUseCase{bucketRepo: bucketRepo, cache: cache}
}

// Execute returns every bucket of the user.
func (uc *ListBucketsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*BucketOutput, error) {
	return readthrough.Load(ctx, uc.cache, userID, adapter.TableInvestmentBuckets, "list",
		func(ctx context.Context) ([]*BucketOutput, error) {
			buckets, err := uc.bucketRepo.FindByUser(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to list buckets: %w", err)
			}
			out := make([]*BucketOutput, len(buckets))
			for i, b := range buckets {
				out[i] = toBucketOutput(b)
			}
			return out, nil
		})
}
