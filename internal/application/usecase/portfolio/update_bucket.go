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

// UpdateBucketInput holds the fields to change. Nil fields are left as is.
type UpdateBucketInput struct {
	UserID           uuid.UUID
	BucketID         uuid.UUID
	Name             *string
	TargetPercentage *decimal.Decimal
}

// UpdateBucketUseCase handles bucket updates.
type UpdateBucketUseCase struct {
	bucketRepo adapter.InvestmentBucketRepository
	cache      adapter.QueryCache
}

// NewUpdateBucketUseCase creates a new UpdateBucketUseCase instance.
func NewUpdateBucketUseCase(bucketRepo adapter.InvestmentBucketRepository, cache adapter.QueryCache) *UpdateBucketUseCase {
	return &UpdateBucketUseCase{bucketRepo: bucketRepo, cache: cache}
}

// Execute applies a partial update to the bucket.
func (uc *UpdateBucketUseCase) Execute(ctx context.Context, input UpdateBucketInput) (*BucketOutput, error) {
	bucket, err := uc.bucketRepo.FindByID(ctx, input.UserID, input.BucketID)
	if err != nil {
		return nil, bucketNotFound(err)
	}

	if input.Name != nil {
		name, err := validateBucketName(*input.Name)
		if err != nil {
			return nil, err
		}
		bucket.Name = name
	}
	if input.TargetPercentage != nil {
		if !isPercentage(*input.TargetPercentage) {
			return nil, invalidPercentage("target percentage")
		}
		bucket.TargetPercentage = *input.TargetPercentage
	}
	bucket.UpdatedAt = time.Now().UTC()

	if err := uc.bucketRepo.Update(ctx, bucket); err != nil {
		return nil, fmt.Errorf("failed to update bucket: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableInvestmentBuckets)

	return toBucketOutput(bucket), nil
}
