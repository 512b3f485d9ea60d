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

// CreateBucketInput represents the input for bucket creation.
type CreateBucketInput struct {
	UserID           uuid.UUID
	Name             string
	TargetPercentage decimal.Decimal
}

// CreateBucketUseCase handles bucket creation logic.
type CreateBucketUseCase struct {
	bucketRepo adapter.InvestmentBucketRepository
	cache      adapter.QueryCache
}

// NewCreateBucketUseCase creates a new CreateBucketUseCase instance.
func NewCreateBucketUseCase(bucketRepo adapter.InvestmentBucketRepository, cache adapter.QueryCache) *CreateBucketUseCase {
	return &CreateBucketUseCase{bucketRepo: bucketRepo, cache: cache}
}

// Execute validates and stores a new bucket.
// The sum of targets across buckets is not enforced; the overview reports it.
func (uc *CreateBucketUseCase) Execute(ctx context.Context, input CreateBucketInput) (*BucketOutput, error) {
	name, err := validateBucketName(input.Name)
	if err != nil {
		return nil, err
	}
	if !isPercentage(input.TargetPercentage) {
		return nil, invalidPercentage("target percentage")
	}

	bucket := entity.NewInvestmentBucket(input.UserID, name, input.TargetPercentage)
	if err := uc.bucketRepo.Create(ctx, bucket); err != nil {
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableInvestmentBuckets)

	return toBucketOutput(bucket), nil
}

func validateBucketName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || utf8.RuneCountInString(name) > MaxBucketNameLength {
		return "", domainerror.NewPortfolioError(domainerror.ErrCodeMissingPortfolioFields,
			"bucket name must be between 1 and 100 characters", domainerror.ErrMissingPortfolioFields)
	}
	return name, nil
}
