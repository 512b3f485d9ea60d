// Package valueobject contains domain value objects for the Life Manager system.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

// Budget defaults used when a user has not saved a budget configuration.
// The 40/40/20 split applies to BaseIncome.
var (
	DefaultBaseIncome           = decimal.NewFromInt(29000)
	DefaultInvestmentPercentage = decimal.NewFromInt(40)
	DefaultEssentialsPercentage = decimal.NewFromInt(40)
	DefaultLifestylePercentage  = decimal.NewFromInt(20)

	DefaultInvestmentTarget = decimal.NewFromInt(11600)
	DefaultEssentialsCap    = decimal.NewFromInt(11575)
	DefaultLifestyleCap     = decimal.NewFromInt(5825)

	DefaultFreeSpendingMonthly = decimal.NewFromInt(3725)
	DefaultFreeSpendingWeekly  = decimal.NewFromInt(930)

	DefaultCreditCardGreen  = decimal.NewFromInt(5000)
	DefaultCreditCardYellow = decimal.NewFromInt(6000)
	DefaultCreditCardRed    = decimal.NewFromInt(7100)
)

// FreeSpendingCategoryName is the category whose spend feeds the weekly allowance.
const FreeSpendingCategoryName = "Gastos Livres"

// DefaultBudgetConfig returns an unsaved configuration carrying the defaults.
func DefaultBudgetConfig() *entity.BudgetConfig {
	return &entity.BudgetConfig{
		BaseIncome:           DefaultBaseIncome,
		InvestmentPercentage: DefaultInvestmentPercentage,
		EssentialsPercentage: DefaultEssentialsPercentage,
		LifestylePercentage:  DefaultLifestylePercentage,
		FreeSpendingAmount:   DefaultFreeSpendingMonthly,
		CreditCardGreen:      DefaultCreditCardGreen,
		CreditCardYellow:     DefaultCreditCardYellow,
		CreditCardRed:        DefaultCreditCardRed,
	}
}

// SeedCategory describes a category created by the default seed.
type SeedCategory struct {
	Name        string
	Group       entity.CategoryGroup
	BudgetLimit decimal.Decimal
}

// DefaultCategories returns the categories created for a new budget.
func DefaultCategories() []SeedCategory {
	return []SeedCategory{
		{Name: "Moradia", Group: entity.CategoryGroupEssentials, BudgetLimit: decimal.NewFromInt(5000)},
		{Name: "Transporte", Group: entity.CategoryGroupEssentials, BudgetLimit: decimal.NewFromInt(2000)},
		{Name: "Alimentação", Group: entity.CategoryGroupEssentials, BudgetLimit: decimal.NewFromInt(2500)},
		{Name: "Saúde", Group: entity.CategoryGroupEssentials, BudgetLimit: decimal.NewFromInt(1500)},
		{Name: "Medicamentos Temporários", Group: entity.CategoryGroupEssentials, BudgetLimit: decimal.NewFromInt(575)},

		{Name: "Esporte/Casal", Group: entity.CategoryGroupLifestyle, BudgetLimit: decimal.NewFromInt(600)},
		{Name: "Manutenção Equipamentos", Group: entity.CategoryGroupLifestyle, BudgetLimit: decimal.NewFromInt(300)},
		{Name: "Suplementos/Nutri", Group: entity.CategoryGroupLifestyle, BudgetLimit: decimal.NewFromInt(500)},
		{Name: "Assinaturas/IAs", Group: entity.CategoryGroupLifestyle, BudgetLimit: decimal.NewFromInt(400)},
		{Name: FreeSpendingCategoryName, Group: entity.CategoryGroupLifestyle, BudgetLimit: decimal.NewFromInt(3725)},
		{Name: "Lazer", Group: entity.CategoryGroupLifestyle, BudgetLimit: decimal.NewFromInt(300)},
	}
}
