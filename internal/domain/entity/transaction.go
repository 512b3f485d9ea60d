// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents how an expense was paid.
type PaymentType string

const (
	PaymentTypePix        PaymentType = "pix"
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeDebitCard  PaymentType = "debit_card"
)

// IsValid reports whether p is a known payment type.
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypePix, PaymentTypeCreditCard, PaymentTypeDebitCard:
		return true
	}
	return false
}

// Transaction is a single expense row. Installment purchases are stored as
// one row per installment sharing description, category and payment type.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Description        string
	Amount             decimal.Decimal
	Date               time.Time
	CategoryID         *uuid.UUID
	PaymentType        PaymentType
	InstallmentCurrent *int
	InstallmentTotal   *int
	CreatedAt          time.Time
}

// NewTransaction creates a new single (non-installment) Transaction.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	date time.Time,
	categoryID *uuid.UUID,
	paymentType PaymentType,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Date:        date,
		CategoryID:  categoryID,
		PaymentType: paymentType,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsInstallment reports whether the row belongs to an installment group.
func (t *Transaction) IsInstallment() bool {
	return t.InstallmentTotal != nil && *t.InstallmentTotal > 1
}

// TransactionWithCategory pairs a transaction with its category name.
type TransactionWithCategory struct {
	Transaction  *Transaction
	CategoryName string
}

// TransactionFilter narrows a transaction listing to a date range.
// Zero times mean unbounded.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}
