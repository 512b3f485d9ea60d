// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetConfig holds a user's income split and credit-card limits.
// Each user has at most one row.
type BudgetConfig struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	BaseIncome           decimal.Decimal
	InvestmentPercentage decimal.Decimal
	EssentialsPercentage decimal.Decimal
	LifestylePercentage  decimal.Decimal
	FreeSpendingAmount   decimal.Decimal
	CreditCardGreen      decimal.Decimal
	CreditCardYellow     decimal.Decimal
	CreditCardRed        decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

var hundred = decimal.NewFromInt(100)

// InvestmentTarget is the monthly amount that should be invested.
func (c *BudgetConfig) InvestmentTarget() decimal.Decimal {
	return c.BaseIncome.Mul(c.InvestmentPercentage).Div(hundred)
}

// EssentialsCap is the monthly ceiling for essentials spending.
func (c *BudgetConfig) EssentialsCap() decimal.Decimal {
	return c.BaseIncome.Mul(c.EssentialsPercentage).Div(hundred)
}

// LifestyleCap is the monthly ceiling for lifestyle spending.
func (c *BudgetConfig) LifestyleCap() decimal.Decimal {
	return c.BaseIncome.Mul(c.LifestylePercentage).Div(hundred)
}

// FreeSpendingWeekly is a quarter of the monthly free spending amount.
func (c *BudgetConfig) FreeSpendingWeekly() decimal.Decimal {
	return c.FreeSpendingAmount.Div(decimal.NewFromInt(4))
}

// PercentagesBalanced reports whether the three percentages add up to 100.
func (c *BudgetConfig) PercentagesBalanced() bool {
	return c.InvestmentPercentage.Add(c.EssentialsPercentage).Add(c.LifestylePercentage).Equal(hundred)
}
