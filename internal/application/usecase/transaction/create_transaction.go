// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Date         time.Time
	CategoryID   *uuid.UUID
	PaymentType  entity.PaymentType
	Installments int
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transactions []*TransactionOutput
}

// CreateTransactionUseCase records an expense, splitting credit-card
// purchases into monthly installments.
type CreateTransactionUseCase struct {
	transactionRepo  adapter.TransactionRepository
	categoryRepo     adapter.CategoryRepository
	budgetConfigRepo adapter.BudgetConfigRepository
	notifier         adapter.BudgetAlertNotifier
	cache            adapter.QueryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
// notifier may be nil to disable credit-card alerts.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetConfigRepo adapter.BudgetConfigRepository,
	notifier adapter.BudgetAlertNotifier,
	cache adapter.QueryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:  transactionRepo,
		categoryRepo:     categoryRepo,
		budgetConfigRepo: budgetConfigRepo,
		notifier:         notifier,
		cache:            cache,
	}
}

// Execute validates the input and inserts every installment row in one batch.
// Nothing is written when validation fails.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	// Verify category exists and belongs to user
	category, err := uc.categoryRepo.FindByID(ctx, input.UserID, *input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	// Only credit card purchases are split
	installments := input.Installments
	if input.PaymentType != entity.PaymentTypeCreditCard || installments < MinInstallments {
		installments = MinInstallments
	}

	rows := SplitInstallments(InstallmentPlan{
		UserID:       input.UserID,
		Description:  input.Description,
		Amount:       input.Amount,
		Date:         input.Date,
		CategoryID:   input.CategoryID,
		PaymentType:  input.PaymentType,
		Installments: installments,
	})

	// Card spend before the insert, to detect the crossing into red
	var spentBefore decimal.Decimal
	watchCard := input.PaymentType == entity.PaymentTypeCreditCard && uc.notifier != nil
	if watchCard {
		spentBefore, err = uc.creditCardSpend(ctx, input.UserID, input.Date)
		if err != nil {
			slog.Debug("Skipping credit card alert check", "userID", input.UserID, "error", err)
			watchCard = false
		}
	}

	// Save every installment row at once
	if err := uc.transactionRepo.CreateBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to create transactions: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableTransactions)

	if watchCard {
		uc.checkCreditCardLimit(ctx, input.UserID, input.Date, spentBefore, rows[0].Amount)
	}

	output := &CreateTransactionOutput{Transactions: make([]*TransactionOutput, 0, len(rows))}
	for _, row := range rows {
		output.Transactions = append(output.Transactions, toTransactionOutput(row, category.Name))
	}
	return output, nil
}

func validateCreateInput(input CreateTransactionInput) error {
	if input.Description == "" || input.CategoryID == nil || input.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description, amount, date and category are required",
			nil,
		)
	}
	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !input.PaymentType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentType,
			"payment type must be 'pix', 'credit_card' or 'debit_card'",
			domainerror.ErrInvalidPaymentType,
		)
	}
	if input.Installments != 0 && (input.Installments < MinInstallments || input.Installments > MaxInstallments) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidInstallments,
			fmt.Sprintf("installments must be between %d and %d", MinInstallments, MaxInstallments),
			domainerror.ErrInvalidInstallments,
		)
	}
	return nil
}

// creditCardSpend sums the credit-card rows in the month containing day.
func (uc *CreateTransactionUseCase) creditCardSpend(ctx context.Context, userID uuid.UUID, day time.Time) (decimal.Decimal, error) {
	start, end := MonthBounds(day)
	rows, err := uc.transactionRepo.FindByFilter(ctx, entity.TransactionFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for _, row := range rows {
		if row.Transaction.PaymentType == entity.PaymentTypeCreditCard {
			spent = spent.Add(row.Transaction.Amount)
		}
	}
	return spent, nil
}

// checkCreditCardLimit notifies the user when the month's card spend enters
// the red zone. Failures are logged only.
func (uc *CreateTransactionUseCase) checkCreditCardLimit(ctx context.Context, userID uuid.UUID, day time.Time, before, added decimal.Decimal) {
	config, err := uc.budgetConfigRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrBudgetConfigNotFound) {
			slog.Debug("Failed to load budget config for alert", "userID", userID, "error", err)
			return
		}
		config = valueobject.DefaultBudgetConfig()
	}

	limits := valueobject.CreditCardLimits{
		Green:  config.CreditCardGreen,
		Yellow: config.CreditCardYellow,
		Red:    config.CreditCardRed,
	}
	after := before.Add(added)
	if !limits.CrossedIntoRed(before, after) {
		return
	}

	alert := adapter.CreditCardAlert{
		UserID:   userID,
		Month:    day.Format("2006-01"),
		Spent:    after,
		RedLimit: limits.Red,
	}
	if err := uc.notifier.NotifyCreditCardRed(ctx, alert); err != nil {
		slog.Warn("Failed to send credit card alert", "userID", userID, "error", err)
	}
}

// MonthBounds returns the first and last day of the month containing day.
func MonthBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 1, -1)
}
