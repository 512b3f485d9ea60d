// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Zero dates leave that side of the range open.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// TransactionOutput represents a transaction in the output.
type TransactionOutput struct {
	ID                 uuid.UUID          `json:"id"`
	Description        string             `json:"description"`
	Amount             decimal.Decimal    `json:"amount"`
	Date               time.Time          `json:"date"`
	CategoryID         *uuid.UUID         `json:"category_id"`
	CategoryName       string             `json:"category_name"`
	PaymentType        entity.PaymentType `json:"payment_type"`
	InstallmentCurrent *int               `json:"installment_current"`
	InstallmentTotal   *int               `json:"installment_total"`
	CreatedAt          time.Time          `json:"created_at"`
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput `json:"transactions"`
	Total        decimal.Decimal      `json:"total"`
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.QueryCache
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, cache adapter.QueryCache) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute lists transactions newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	key := fmt.Sprintf("list:%s:%s", formatDay(input.StartDate), formatDay(input.EndDate))

	return readthrough.Load(ctx, uc.cache, input.UserID, adapter.TableTransactions, key,
		func(ctx context.Context) (*ListTransactionsOutput, error) {
			rows, err := uc.transactionRepo.FindByFilter(ctx, entity.TransactionFilter{
				UserID:    input.UserID,
				StartDate: input.StartDate,
				EndDate:   input.EndDate,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to list transactions: %w", err)
			}

			output := &ListTransactionsOutput{
				Transactions: make([]*TransactionOutput, 0, len(rows)),
				Total:        decimal.Zero,
			}
			for _, row := range rows {
				output.Transactions = append(output.Transactions, toTransactionOutput(row.Transaction, row.CategoryName))
				output.Total = output.Total.Add(row.Transaction.Amount)
			}
			return output, nil
		})
}

func toTransactionOutput(tx *entity.Transaction, categoryName string) *TransactionOutput {
	return &TransactionOutput{
		ID:                 tx.ID,
		Description:        tx.Description,
		Amount:             tx.Amount,
		Date:               tx.Date,
		CategoryID:         tx.CategoryID,
		CategoryName:       categoryName,
		PaymentType:        tx.PaymentType,
		InstallmentCurrent: tx.InstallmentCurrent,
		InstallmentTotal:   tx.InstallmentTotal,
		CreatedAt:          tx.CreatedAt,
	}
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
