// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Date is YYYY-MM-DD. Installments above one only apply to credit card purchases.
type CreateTransactionRequest struct {
	Description  string           `json:"description"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	Date         string           `json:"date" binding:"required"`
	CategoryID   *string          `json:"category_id"`
	PaymentType  string           `json:"payment_type" binding:"required"`
	Installments int              `json:"installments" binding:"omitempty,min=1"`
}

// CreateTransactionResponse lists the rows written for one purchase.
type CreateTransactionResponse struct {
	Transactions []*transaction.TransactionOutput `json:"transactions"`
	Count        int                              `json:"count"`
}
