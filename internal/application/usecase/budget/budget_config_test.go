package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

type memoryBudgetRepo struct {
	rows    map[uuid.UUID]*entity.BudgetConfig
	upserts int
}

func (r *memoryBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.BudgetConfig, error) {
	c, ok := r.rows[userID]
	if !ok {
		return nil, domainerror.ErrBudgetConfigNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memoryBudgetRepo) Upsert(_ context.Context, c *entity.BudgetConfig) error {
	r.upserts++
	copied := *c
	r.rows[c.UserID] = &copied
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGetBudgetConfig_FallsBackToDefaults(t *testing.T) {
	uc := NewGetBudgetConfigUseCase(&memoryBudgetRepo{rows: map[uuid.UUID]*entity.BudgetConfig{}}, nil)

	out, err := uc.Execute(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := map[string]struct {
		got  decimal.Decimal
		want string
	}{
		"base income":        {out.BaseIncome, "29000"},
		"investment target":  {out.InvestmentTarget, "11600"},
		"essentials cap":     {out.EssentialsCap, "11600"},
		"lifestyle cap":      {out.LifestyleCap, "5800"},
		"free monthly":       {out.FreeSpendingMonthly, "3725"},
		"free weekly":        {out.FreeSpendingWeekly, "931.25"},
		"credit card red":    {out.CreditCardRed, "7100"},
		"credit card yellow": {out.CreditCardYellow, "6000"},
	}
	for name, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s: expected %s, got %s", name, c.want, c.got)
		}
	}
	if !out.IsDefault || !out.PercentagesBalanced {
		t.Errorf("expected default balanced config, got default=%v balanced=%v", out.IsDefault, out.PercentagesBalanced)
	}
}

func TestUpsertBudgetConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("first save merges over defaults", func(t *testing.T) {
		repo := &memoryBudgetRepo{rows: map[uuid.UUID]*entity.BudgetConfig{}}
		userID := uuid.New()
		income := dec("30000")

		out, err := NewUpsertBudgetConfigUseCase(repo, nil).Execute(ctx, UpsertBudgetConfigInput{UserID: userID, BaseIncome: &income})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.InvestmentTarget.Equal(dec("12000")) {
			t.Errorf("expected investment target 12000, got %s", out.InvestmentTarget)
		}
		if out.IsDefault {
			t.Error("saved config must not be flagged as default")
		}
		if repo.rows[userID].ID == uuid.Nil {
			t.Error("expected an id on first save")
		}
	})

	t.Run("second save keeps the same row", func(t *testing.T) {
		repo := &memoryBudgetRepo{rows: map[uuid.UUID]*entity.BudgetConfig{}}
		userID := uuid.New()
		uc := NewUpsertBudgetConfigUseCase(repo, nil)
		a, b := dec("50"), dec("30")

		_, _ = uc.Execute(ctx, UpsertBudgetConfigInput{UserID: userID, InvestmentPercentage: &a})
		firstID := repo.rows[userID].ID
		out, err := uc.Execute(ctx, UpsertBudgetConfigInput{UserID: userID, EssentialsPercentage: &b})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.rows[userID].ID != firstID {
			t.Error("expected the row id to be stable across upserts")
		}
		if !out.InvestmentPercentage.Equal(a) || !out.EssentialsPercentage.Equal(b) {
			t.Errorf("expected both updates applied, got %s/%s", out.InvestmentPercentage, out.EssentialsPercentage)
		}
		if !out.PercentagesBalanced {
			t.Error("expected 50/30/20 to be balanced")
		}
	})

	t.Run("validation", func(t *testing.T) {
		neg, over, low := dec("-1"), dec("101"), dec("1000")
		tests := []struct {
			name  string
			input UpsertBudgetConfigInput
			want  error
		}{
			{"negative income", UpsertBudgetConfigInput{BaseIncome: &neg}, domainerror.ErrInvalidBudgetAmount},
			{"percentage over 100", UpsertBudgetConfigInput{LifestylePercentage: &over}, domainerror.ErrInvalidBudgetPercentage},
			{"red below yellow", UpsertBudgetConfigInput{CreditCardRed: &low}, domainerror.ErrInvalidCreditCardLimits},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &memoryBudgetRepo{rows: map[uuid.UUID]*entity.BudgetConfig{}}
				tt.input.UserID = uuid.New()
				_, err := NewUpsertBudgetConfigUseCase(repo, nil).Execute(ctx, tt.input)
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
				if repo.upserts != 0 {
					t.Error("expected no write on validation failure")
				}
			})
		}
	})
}
