// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

// BudgetConfigModel represents the budget_config table. One row per user.
type BudgetConfigModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	BaseIncome           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InvestmentPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	EssentialsPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	LifestylePercentage  decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FreeSpendingAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreditCardGreen      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreditCardYellow     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreditCardRed        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetConfigModel.
func (BudgetConfigModel) TableName() string {
	return "budget_config"
}

// ToEntity converts a BudgetConfigModel to a domain BudgetConfig entity.
func (m *BudgetConfigModel) ToEntity() *entity.BudgetConfig {
	return &entity.BudgetConfig{
		ID:                   m.ID,
		UserID:               m.UserID,
		BaseIncome:           m.BaseIncome,
		InvestmentPercentage: m.InvestmentPercentage,
		EssentialsPercentage: m.EssentialsPercentage,
		LifestylePercentage:  m.LifestylePercentage,
		FreeSpendingAmount:   m.FreeSpendingAmount,
		CreditCardGreen:      m.CreditCardGreen,
		CreditCardYellow:     m.CreditCardYellow,
		CreditCardRed:        m.CreditCardRed,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// BudgetConfigFromEntity creates a BudgetConfigModel from a domain BudgetConfig entity.
func BudgetConfigFromEntity(c *entity.BudgetConfig) *BudgetConfigModel {
	return &BudgetConfigModel{
		ID:                   c.ID,
		UserID:               c.UserID,
		BaseIncome:           c.BaseIncome,
		InvestmentPercentage: c.InvestmentPercentage,
		EssentialsPercentage: c.EssentialsPercentage,
		LifestylePercentage:  c.LifestylePercentage,
		FreeSpendingAmount:   c.FreeSpendingAmount,
		CreditCardGreen:      c.CreditCardGreen,
		CreditCardYellow:     c.CreditCardYellow,
		CreditCardRed:        c.CreditCardRed,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
