// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/usecase/budget"
)

// UpsertBudgetConfigRequest represents the request body for saving the budget
// configuration. Omitted fields keep their current value.
type UpsertBudgetConfigRequest struct {
	BaseIncome           *decimal.Decimal `json:"base_income"`
	InvestmentPercentage *decimal.Decimal `json:"investment_percentage"`
	EssentialsPercentage *decimal.Decimal `json:"essentials_percentage"`
	LifestylePercentage  *decimal.Decimal `json:"lifestyle_percentage"`
	FreeSpendingAmount   *decimal.Decimal `json:"free_spending_amount"`
	CreditCardGreen      *decimal.Decimal `json:"credit_card_green_limit"`
	CreditCardYellow     *decimal.Decimal `json:"credit_card_yellow_limit"`
	CreditCardRed        *decimal.Decimal `json:"credit_card_red_limit"`
}

// ToInput builds the use case input.
func (r UpsertBudgetConfigRequest) ToInput(userID uuid.UUID) budget.UpsertBudgetConfigInput {
	return budget.UpsertBudgetConfigInput{
		UserID:               userID,
		BaseIncome:           r.BaseIncome,
		InvestmentPercentage: r.InvestmentPercentage,
		EssentialsPercentage: r.EssentialsPercentage,
		LifestylePercentage:  r.LifestylePercentage,
		FreeSpendingAmount:   r.FreeSpendingAmount,
		CreditCardGreen:      r.CreditCardGreen,
		CreditCardYellow:     r.CreditCardYellow,
		CreditCardRed:        r.CreditCardRed,
	}
}
