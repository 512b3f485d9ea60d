// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/domain/entity"
)

// InvestmentBucketRepository defines persistence operations for buckets.
type InvestmentBucketRepository interface {
	Create(ctx context.Context, bucket *entity.InvestmentBucket) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.InvestmentBucket, error)

	// FindByUser lists buckets oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvestmentBucket, error)

	Update(ctx context.Context, bucket *entity.InvestmentBucket) error

	// Delete removes the bucket and every asset in it.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// AssetRepository defines persistence operations for assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Asset, error)

	// FindByUser lists assets most recently updated first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error)

	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
