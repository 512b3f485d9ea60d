// Package budget contains budget configuration use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// UpsertBudgetConfigInput carries the fields to change. Nil fields keep
// their current (or default) value.
type UpsertBudgetConfigInput struct {
	UserID               uuid.UUID
	BaseIncome           *decimal.Decimal
	InvestmentPercentage *decimal.Decimal
	EssentialsPercentage *decimal.Decimal
	LifestylePercentage  *decimal.Decimal
	FreeSpendingAmount   *decimal.Decimal
	CreditCardGreen      *decimal.Decimal
	CreditCardYellow     *decimal.Decimal
	CreditCardRed        *decimal.Decimal
}

// UpsertBudgetConfigUseCase saves the single budget row of a user.
type UpsertBudgetConfigUseCase struct {
	budgetConfigRepo adapter.BudgetConfigRepository
	cache            adapter.QueryCache
}

// NewUpsertBudgetConfigUseCase creates a new UpsertBudgetConfigUseCase instance.
func NewUpsertBudgetConfigUseCase(budgetConfigRepo adapter.BudgetConfigRepository, cache adapter.QueryCache) *UpsertBudgetConfigUseCase {
	return &UpsertBudgetConfigUseCase{
		budgetConfigRepo: budgetConfigRepo,
		cache:            cache,
	}
}

// Execute merges the input over the current configuration and stores it.
// Percentages that do not add up to 100 are accepted.
func (uc *UpsertBudgetConfigUseCase) Execute(ctx context.Context, input UpsertBudgetConfigInput) (*BudgetConfigOutput, error) {
	config, isDefault, err := LoadBudgetConfig(ctx, uc.budgetConfigRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	// Validate amounts
	for _, amount := range []*decimal.Decimal{input.BaseIncome, input.FreeSpendingAmount, input.CreditCardGreen, input.CreditCardYellow, input.CreditCardRed} {
		if amount != nil && amount.IsNegative() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"amounts must not be negative",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
	}
	// Validate percentages. They do not have to sum to 100.
	hundred := decimal.NewFromInt(100)
	for _, pct := range []*decimal.Decimal{input.InvestmentPercentage, input.EssentialsPercentage, input.LifestylePercentage} {
		if pct != nil && (pct.IsNegative() || pct.GreaterThan(hundred)) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPercentage,
				"percentages must be between 0 and 100",
				domainerror.ErrInvalidBudgetPercentage,
			)
		}
	}

	// Apply the provided fields over the current (or default) config
	assign := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&config.BaseIncome, input.BaseIncome)
	assign(&config.InvestmentPercentage, input.InvestmentPercentage)
	assign(&config.EssentialsPercentage, input.EssentialsPercentage)
	assign(&config.LifestylePercentage, input.LifestylePercentage)
	assign(&config.FreeSpendingAmount, input.FreeSpendingAmount)
	assign(&config.CreditCardGreen, input.CreditCardGreen)
	assign(&config.CreditCardYellow, input.CreditCardYellow)
	assign(&config.CreditCardRed, input.CreditCardRed)

	if config.CreditCardGreen.GreaterThan(config.CreditCardYellow) || config.CreditCardYellow.GreaterThan(config.CreditCardRed) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidCreditCardLimits,
			"credit card limits must be ascending: green <= yellow <= red",
			domainerror.ErrInvalidCreditCardLimits,
		)
	}

	// First save for this user
	now := time.Now().UTC()
	if isDefault {
		config.ID = uuid.New()
		config.CreatedAt = now
	}
	config.UserID = input.UserID
	config.UpdatedAt = now

	if err := uc.budgetConfigRepo.Upsert(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to save budget config: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableBudgetConfig)

	return ToBudgetConfigOutput(config, false), nil
}
