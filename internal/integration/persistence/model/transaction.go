// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description        string          `gorm:"type:varchar(255);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date               time.Time       `gorm:"type:date;not null;index"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentType        string          `gorm:"type:varchar(20);not null;index"`
	InstallmentCurrent *int            `gorm:"type:integer"`
	InstallmentTotal   *int            `gorm:"type:integer"`
	CreatedAt          time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		Description:        m.Description,
		Amount:             m.Amount,
		Date:               m.Date.UTC(),
		CategoryID:         m.CategoryID,
		PaymentType:        entity.PaymentType(m.PaymentType),
		InstallmentCurrent: m.InstallmentCurrent,
		InstallmentTotal:   m.InstallmentTotal,
		CreatedAt:          m.CreatedAt,
	}
}

// ToEntityWithCategory converts the model and its preloaded category.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	out := &entity.TransactionWithCategory{Transaction: m.ToEntity()}
	if m.Category != nil {
		out.CategoryName = m.Category.Name
	}
	return out
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                 t.ID,
		UserID:             t.UserID,
		Description:        t.Description,
		Amount:             t.Amount,
		Date:               t.Date,
		CategoryID:         t.CategoryID,
		PaymentType:        string(t.PaymentType),
		InstallmentCurrent: t.InstallmentCurrent,
		InstallmentTotal:   t.InstallmentTotal,
		CreatedAt:          t.CreatedAt,
	}
}
