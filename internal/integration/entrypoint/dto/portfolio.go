// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/usecase/portfolio"
)

// CreateBucketRequest represents the request body for bucket creation.
type CreateBucketRequest struct {
	Name             string           `json:"name"`
	TargetPercentage *decimal.Decimal `json:"target_percentage"`
}

// ToInput builds the use case input. A missing target means zero.
func (r CreateBucketRequest) ToInput(userID uuid.UUID) portfolio.CreateBucketInput {
	input := portfolio.CreateBucketInput{UserID: userID, Name: r.Name, TargetPercentage: decimal.Zero}
	if r.TargetPercentage != nil {
		input.TargetPercentage = *r.TargetPercentage
	}
	return input
}

// UpdateBucketRequest represents the request body for bucket update.
type UpdateBucketRequest struct {
	Name             *string          `json:"name"`
	TargetPercentage *decimal.Decimal `json:"target_percentage"`
}

// CreateAssetRequest represents the request body for asset creation.
type CreateAssetRequest struct {
	BucketID                 string           `json:"bucket_id" binding:"required"`
	Ticker                   string           `json:"ticker"`
	Name                     *string          `json:"name"`
	Quantity                 *decimal.Decimal `json:"quantity"`
	TargetPercentageInBucket *decimal.Decimal `json:"target_percentage_in_bucket"`
	IsManual                 bool             `json:"is_manual"`
	ManualPrice              *decimal.Decimal `json:"manual_price"`
}

// ToInput builds the use case input. Missing quantity and target mean zero.
func (r CreateAssetRequest) ToInput(userID, bucketID uuid.UUID) portfolio.CreateAssetInput {
	input := portfolio.CreateAssetInput{
		UserID:                   userID,
		BucketID:                 bucketID,
		Ticker:                   r.Ticker,
		Name:                     r.Name,
		Quantity:                 decimal.Zero,
		TargetPercentageInBucket: decimal.Zero,
		IsManual:                 r.IsManual,
		ManualPrice:              r.ManualPrice,
	}
	if r.Quantity != nil {
		input.Quantity = *r.Quantity
	}
	if r.TargetPercentageInBucket != nil {
		input.TargetPercentageInBucket = *r.TargetPercentageInBucket
	}
	return input
}

// UpdateAssetRequest represents the request body for a partial asset update.
type UpdateAssetRequest struct {
	BucketID                 *string          `json:"bucket_id"`
	Ticker                   *string          `json:"ticker"`
	Name                     *string          `json:"name"`
	Quantity                 *decimal.Decimal `json:"quantity"`
	TargetPercentageInBucket *decimal.Decimal `json:"target_percentage_in_bucket"`
	IsManual                 *bool            `json:"is_manual"`
	ManualPrice              *decimal.Decimal `json:"manual_price"`
}

// UpdateAssetPriceRequest sets the manual price of an asset.
type UpdateAssetPriceRequest struct {
	Price *decimal.Decimal `json:"price" binding:"required"`
}

// SimulateContributionRequest asks how to split a new contribution.
type SimulateContributionRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// BucketListResponse wraps the bucket list.
type BucketListResponse struct {
	Buckets []*portfolio.BucketOutput `json:"buckets"`
}

// AssetListResponse wraps the asset list.
type AssetListResponse struct {
	Assets []*portfolio.AssetOutput `json:"assets"`
}
