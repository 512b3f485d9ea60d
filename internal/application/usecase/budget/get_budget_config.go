// Package budget contains budget configuration use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/domain/valueobject"
)

// BudgetConfigOutput is the stored configuration plus its derived values.
type BudgetConfigOutput struct {
	BaseIncome           decimal.Decimal `json:"base_income"`
	InvestmentPercentage decimal.Decimal `json:"investment_percentage"`
	EssentialsPercentage decimal.Decimal `json:"essentials_percentage"`
	LifestylePercentage  decimal.Decimal `json:"lifestyle_percentage"`
	FreeSpendingAmount   decimal.Decimal `json:"free_spending_amount"`
	CreditCardGreen      decimal.Decimal `json:"credit_card_green_limit"`
	CreditCardYellow     decimal.Decimal `json:"credit_card_yellow_limit"`
	CreditCardRed        decimal.Decimal `json:"credit_card_red_limit"`

	InvestmentTarget    decimal.Decimal `json:"investment_target"`
	EssentialsCap       decimal.Decimal `json:"essentials_cap"`
	LifestyleCap        decimal.Decimal `json:"lifestyle_cap"`
	FreeSpendingMonthly decimal.Decimal `json:"free_spending_monthly"`
	FreeSpendingWeekly  decimal.Decimal `json:"free_spending_weekly"`

	PercentagesBalanced bool `json:"percentages_balanced"`
	IsDefault           bool `json:"is_default"`
}

// GetBudgetConfigUseCase returns the user's budget configuration, falling
// back to the defaults when none was saved.
type GetBudgetConfigUseCase struct {
	budgetConfigRepo adapter.BudgetConfigRepository
	cache            adapter.QueryCache
}

// NewGetBudgetConfigUseCase creates a new GetBudgetConfigUseCase instance.
func NewGetBudgetConfigUseCase(budgetConfigRepo adapter.BudgetConfigRepository, cache adapter.QueryCache) *GetBudgetConfigUseCase {
	return &GetBudgetConfigUseCase{
		budgetConfigRepo: budgetConfigRepo,
		cache:            cache,
	}
}

// Execute loads the configuration.
func (uc *GetBudgetConfigUseCase) Execute(ctx context.Context, userID uuid.UUID) (*BudgetConfigOutput, error) {
	return readthrough.Load(ctx, uc.cache, userID, adapter.TableBudgetConfig, "current",
		func(ctx context.Context) (*BudgetConfigOutput, error) {
			config, isDefault, err := LoadBudgetConfig(ctx, uc.budgetConfigRepo, userID)
			if err != nil {
				return nil, err
			}
			return ToBudgetConfigOutput(config, isDefault), nil
		})
}

// LoadBudgetConfig returns the stored configuration or the defaults.
func LoadBudgetConfig(ctx context.Context, repo adapter.BudgetConfigRepository, userID uuid.UUID) (*entity.BudgetConfig, bool, error) {
	config, err := repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetConfigNotFound) {
			config = valueobject.DefaultBudgetConfig()
			config.UserID = userID
			return config, true, nil
		}
		return nil, false, fmt.Errorf("failed to load budget config: %w", err)
	}
	return config, false, nil
}

// ToBudgetConfigOutput derives the caps and targets from a configuration.
func ToBudgetConfigOutput(c *entity.BudgetConfig, isDefault bool) *BudgetConfigOutput {
	return &BudgetConfigOutput{
		BaseIncome:           c.BaseIncome,
		InvestmentPercentage: c.InvestmentPercentage,
		EssentialsPercentage: c.EssentialsPercentage,
		LifestylePercentage:  c.LifestylePercentage,
		FreeSpendingAmount:   c.FreeSpendingAmount,
		CreditCardGreen:      c.CreditCardGreen,
		CreditCardYellow:     c.CreditCardYellow,
		CreditCardRed:        c.CreditCardRed,
		InvestmentTarget:     c.InvestmentTarget(),
		EssentialsCap:        c.EssentialsCap(),
		LifestyleCap:         c.LifestyleCap(),
		FreeSpendingMonthly:  c.FreeSpendingAmount,
		FreeSpendingWeekly:   c.FreeSpendingWeekly(),
		PercentagesBalanced:  c.PercentagesBalanced(),
		IsDefault:            isDefault,
	}
}
