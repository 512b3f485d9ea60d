// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/persistence/model"
)

type investmentBucketRepository struct {
	db *gorm.DB
}

// NewInvestmentBucketRepository creates a new bucket repository instance.
func NewInvestmentBucketRepository(db *gorm.DB) adapter.InvestmentBucketRepository {
	return &investmentBucketRepository{db: db}
}

func (r *investmentBucketRepository) Create(ctx context.Context, bucket *entity.InvestmentBucket) error {
	return r.db.WithContext(ctx).Create(model.InvestmentBucketFromEntity(bucket)).Error
}

func (r *investmentBucketRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.InvestmentBucket, error) {
	var bucketModel model.InvestmentBucketModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&bucketModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBucketNotFound
		}
		return nil, result.Error
	}
	return bucketModel.ToEntity(), nil
}

func (r *investmentBucketRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvestmentBucket, error) {
	var bucketModels []model.InvestmentBucketModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&bucketModels)
	if result.Error != nil {
		return nil, result.Error
	}

	buckets := make([]*entity.InvestmentBucket, len(bucketModels))
	for i := range bucketModels {
		buckets[i] = bucketModels[i].ToEntity()
	}
	return buckets, nil
}

func (r *investmentBucketRepository) Update(ctx context.Context, bucket *entity.InvestmentBucket) error {
	return r.db.WithContext(ctx).Save(model.InvestmentBucketFromEntity(bucket)).Error
}

// Delete removes the bucket and its assets in one transaction.
func (r *investmentBucketRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Assets first, they reference the bucket
		if err := tx.Delete(&model.AssetModel{}, "bucket_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.InvestmentBucketModel{}, "id = ? AND user_id = ?", id, userID).Error
	})
}

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository instance.
func NewAssetRepository(db *gorm.DB) adapter.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Create(model.AssetFromEntity(asset)).Error
}

func (r *assetRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Asset, error) {
	var assetModel model.AssetModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&assetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAssetNotFound
		}
		return nil, result.Error
	}
	return assetModel.ToEntity(), nil
}

func (r *assetRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	var assetModels []model.AssetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&assetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	assets := make([]*entity.Asset, len(assetModels))
	for i := range assetModels {
		assets[i] = assetModels[i].ToEntity()
	}
	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Save(model.AssetFromEntity(asset)).Error
}

func (r *assetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AssetModel{}, "id = ? AND user_id = ?", id, userID).Error
}
