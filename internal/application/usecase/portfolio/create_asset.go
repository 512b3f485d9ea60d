// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// CreateAssetInput represents the input for asset creation.
type CreateAssetInput struct {
	UserID                   uuid.UUID
	BucketID                 uuid.UUID
	Ticker                   string
	Name                     *string
	Quantity                 decimal.Decimal
	TargetPercentageInBucket decimal.Decimal
	IsManual                 bool
	ManualPrice              *decimal.Decimal
}

// CreateAssetUseCase handles asset creation logic.
type CreateAssetUseCase struct {
	assetRepo  adapter.AssetRepository
	bucketRepo adapter.InvestmentBucketRepository
	cache      adapter.QueryCache
}

// NewCreateAssetUseCase creates a new CreateAssetUseCase instance.
func NewCreateAssetUseCase(assetRepo adapter.AssetRepository, bucketRepo adapter.InvestmentBucketRepository, cache adapter.QueryCache) *CreateAssetUseCase {
	return &CreateAssetUseCase{assetRepo: assetRepo, bucketRepo: bucketRepo, cache: cache}
}

// Execute validates and stores the asset in one of the user's buckets.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, input CreateAssetInput) (*AssetOutput, error) {
	ticker, err := normalizeTicker(input.Ticker)
	if err != nil {
		return nil, err
	}
	if err := validateHolding(input.Quantity, input.TargetPercentageInBucket, input.ManualPrice); err != nil {
		return nil, err
	}
	if _, err := uc.bucketRepo.FindByID(ctx, input.UserID, input.BucketID); err != nil {
		return nil, bucketNotFound(err)
	}

	asset := entity.NewAsset(input.UserID, input.BucketID, ticker, input.Quantity, input.TargetPercentageInBucket)
	asset.Name = trimOptional(input.Name)
	asset.IsManual = input.IsManual
	if input.IsManual {
		asset.ManualPrice = input.ManualPrice
	}

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableAssets)

	return toAssetOutput(asset), nil
}

func normalizeTicker(raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" || utf8.RuneCountInString(ticker) > MaxTickerLength {
		return "", domainerror.NewPortfolioError(domainerror.ErrCodeMissingPortfolioFields,
			"ticker must be between 1 and 20 characters", domainerror.ErrMissingPortfolioFields)
	}
	return ticker, nil
}

func validateHolding(quantity, target decimal.Decimal, manualPrice *decimal.Decimal) error {
	if quantity.IsNegative() {
		return domainerror.NewPortfolioError(domainerror.ErrCodeInvalidQuantity, "quantity must not be negative", domainerror.ErrInvalidQuantity)
	}
	if !isPercentage(target) {
		return invalidPercentage("target percentage in bucket")
	}
	if manualPrice != nil && manualPrice.IsNegative() {
		return domainerror.NewPortfolioError(domainerror.ErrCodeInvalidPrice, "price must not be negative", domainerror.ErrInvalidPrice)
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
