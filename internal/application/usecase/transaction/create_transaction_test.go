package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	rows    []*entity.Transaction
	batches int
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, txs []*entity.Transaction) error {
	r.batches++
	r.rows = append(r.rows, txs...)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Transaction, error) {
	for _, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			return row, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter entity.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	var out []*entity.TransactionWithCategory
	for _, row := range r.rows {
		if row.UserID != filter.UserID {
			continue
		}
		if !filter.StartDate.IsZero() && row.Date.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && row.Date.After(filter.EndDate) {
			continue
		}
		out = append(out, &entity.TransactionWithCategory{Transaction: row})
	}
	return out, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

type fakeBudgetConfigRepo struct {
	config *entity.BudgetConfig
}

func (r *fakeBudgetConfigRepo) FindByUser(context.Context, uuid.UUID) (*entity.BudgetConfig, error) {
	if r.config == nil {
		return nil, domainerror.ErrBudgetConfigNotFound
	}
	return r.config, nil
}

func (r *fakeBudgetConfigRepo) Upsert(_ context.Context, c *entity.BudgetConfig) error {
	r.config = c
	return nil
}

type recordingNotifier struct {
	alerts []adapter.CreditCardAlert
}

func (n *recordingNotifier) NotifyCreditCardRed(_ context.Context, alert adapter.CreditCardAlert) error {
	n.alerts = append(n.alerts, alert)
	return nil
}

func newCreateFixture() (*CreateTransactionUseCase, *fakeTransactionRepo, *recordingNotifier, uuid.UUID, uuid.UUID) {
	userID := uuid.New()
	category := entity.NewCategory(userID, "Lazer", decimal.NewFromInt(300), entity.CategoryGroupLifestyle)
	txRepo := &fakeTransactionRepo{}
	notifier := &recordingNotifier{}
	uc := NewCreateTransactionUseCase(
		txRepo,
		&fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}},
		&fakeBudgetConfigRepo{},
		notifier,
		nil,
	)
	return uc, txRepo, notifier, userID, category.ID
}

func TestCreateTransaction_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*CreateTransactionInput)
		wantCode domainerror.TransactionErrorCode
	}{
		{"blank description", func(in *CreateTransactionInput) { in.Description = "   " }, domainerror.ErrCodeMissingTransactionFields},
		{"missing category", func(in *CreateTransactionInput) { in.CategoryID = nil }, domainerror.ErrCodeMissingTransactionFields},
		{"zero amount", func(in *CreateTransactionInput) { in.Amount = decimal.Zero }, domainerror.ErrCodeInvalidTransactionAmount},
		{"negative amount", func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) }, domainerror.ErrCodeInvalidTransactionAmount},
		{"unknown payment type", func(in *CreateTransactionInput) { in.PaymentType = "boleto" }, domainerror.ErrCodeInvalidPaymentType},
		{"too many installments", func(in *CreateTransactionInput) { in.Installments = 13 }, domainerror.ErrCodeInvalidInstallments},
		{"unknown category", func(in *CreateTransactionInput) { id := uuid.New(); in.CategoryID = &id }, domainerror.ErrCodeTxnCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _, userID, categoryID := newCreateFixture()
			input := CreateTransactionInput{
				UserID:       userID,
				Description:  "Cinema",
				Amount:       decimal.NewFromInt(40),
				Date:         date("2024-06-10"),
				CategoryID:   &categoryID,
				PaymentType:  entity.PaymentTypeCreditCard,
				Installments: 1,
			}
			tt.mutate(&input)

			_, err := uc.Execute(ctx, input)

			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txErr.Code)
			}
			if repo.batches != 0 {
				t.Errorf("expected no insert, got %d batches", repo.batches)
			}
		})
	}
}

func TestCreateTransaction_Installments(t *testing.T) {
	ctx := context.Background()

	t.Run("credit card purchase is split in one batch", func(t *testing.T) {
		uc, repo, _, userID, categoryID := newCreateFixture()

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:       userID,
			Description:  "TV",
			Amount:       decimal.NewFromInt(3000),
			Date:         date("2024-01-31"),
			CategoryID:   &categoryID,
			PaymentType:  entity.PaymentTypeCreditCard,
			Installments: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.batches != 1 || len(repo.rows) != 10 {
			t.Fatalf("expected 10 rows in 1 batch, got %d rows in %d batches", len(repo.rows), repo.batches)
		}
		if len(out.Transactions) != 10 {
			t.Errorf("expected 10 output rows, got %d", len(out.Transactions))
		}
		if out.Transactions[0].CategoryName != "Lazer" {
			t.Errorf("expected category name Lazer, got %q", out.Transactions[0].CategoryName)
		}
		if got := out.Transactions[1].Date.Format("2006-01-02"); got != "2024-02-29" {
			t.Errorf("expected second installment on 2024-02-29, got %s", got)
		}
	})

	t.Run("installments are ignored for pix", func(t *testing.T) {
		uc, repo, _, userID, categoryID := newCreateFixture()

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:       userID,
			Description:  "Mercado",
			Amount:       decimal.NewFromInt(300),
			Date:         date("2024-01-10"),
			CategoryID:   &categoryID,
			PaymentType:  entity.PaymentTypePix,
			Installments: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.rows) != 1 || !repo.rows[0].Amount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected a single row of 300, got %d rows", len(repo.rows))
		}
	})
}

func TestCreateTransaction_CreditCardAlert(t *testing.T) {
	ctx := context.Background()
	uc, _, notifier, userID, categoryID := newCreateFixture()

	purchase := func(amount int64) {
		t.Helper()
		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Description: "Compra",
			Amount:      decimal.NewFromInt(amount),
			Date:        date("2024-06-05"),
			CategoryID:  &categoryID,
			PaymentType: entity.PaymentTypeCreditCard,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	purchase(7000)
	if len(notifier.alerts) != 0 {
		t.Fatalf("expected no alert below the red limit, got %d", len(notifier.alerts))
	}

	purchase(100)
	if len(notifier.alerts) != 1 {
		t.Fatalf("expected 1 alert when reaching the red limit, got %d", len(notifier.alerts))
	}
	if notifier.alerts[0].Month != "2024-06" || !notifier.alerts[0].Spent.Equal(decimal.NewFromInt(7100)) {
		t.Errorf("unexpected alert %+v", notifier.alerts[0])
	}

	purchase(50)
	if len(notifier.alerts) != 1 {
		t.Errorf("expected no repeat alert once in the red, got %d", len(notifier.alerts))
	}
}
