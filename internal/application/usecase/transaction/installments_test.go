package transaction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSplitInstallments(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name       string
		amount     string
		n          int
		start      string
		wantAmount string
		wantDates  []string
		wantSum    string
	}{
		{
			name:       "single payment",
			amount:     "250.00",
			n:          1,
			start:      "2024-03-10",
			wantAmount: "250",
			wantDates:  []string{"2024-03-10"},
			wantSum:    "250",
		},
		{
			name:       "three rows lose a cent",
			amount:     "100",
			n:          3,
			start:      "2024-01-15",
			wantAmount: "33.33",
			wantDates:  []string{"2024-01-15", "2024-02-15", "2024-03-15"},
			wantSum:    "99.99",
		},
		{
			name:       "rounding up gains cents",
			amount:     "0.05",
			n:          2,
			start:      "2024-05-01",
			wantAmount: "0.03",
			wantDates:  []string{"2024-05-01", "2024-06-01"},
			wantSum:    "0.06",
		},
		{
			name:       "month end clamps in leap year",
			amount:     "1200",
			n:          3,
			start:      "2024-01-31",
			wantAmount: "400",
			wantDates:  []string{"2024-01-31", "2024-02-29", "2024-03-31"},
			wantSum:    "1200",
		},
		{
			name:       "crosses year boundary",
			amount:     "1000",
			n:          12,
			start:      "2024-11-30",
			wantAmount: "83.33",
			wantDates: []string{
				"2024-11-30", "2024-12-30", "2025-01-30", "2025-02-28",
				"2025-03-30", "2025-04-30", "2025-05-30", "2025-06-30",
				"2025-07-30", "2025-08-30", "2025-09-30", "2025-10-30",
			},
			wantSum: "999.96",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := SplitInstallments(InstallmentPlan{
				UserID:       uuid.New(),
				Description:  "Notebook",
				Amount:       decimal.RequireFromString(tt.amount),
				Date:         date(tt.start),
				CategoryID:   &categoryID,
				PaymentType:  entity.PaymentTypeCreditCard,
				Installments: tt.n,
			})

			if len(rows) != tt.n {
				t.Fatalf("expected %d rows, got %d", tt.n, len(rows))
			}

			sum := decimal.Zero
			for i, row := range rows {
				if !row.Amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
					t.Errorf("row %d: expected amount %s, got %s", i, tt.wantAmount, row.Amount)
				}
				if got := row.Date.Format("2006-01-02"); got != tt.wantDates[i] {
					t.Errorf("row %d: expected date %s, got %s", i, tt.wantDates[i], got)
				}
				if *row.InstallmentCurrent != i+1 || *row.InstallmentTotal != tt.n {
					t.Errorf("row %d: expected installment %d/%d, got %d/%d", i, i+1, tt.n, *row.InstallmentCurrent, *row.InstallmentTotal)
				}
				if row.Description != "Notebook" || *row.CategoryID != categoryID {
					t.Errorf("row %d: shared fields not copied", i)
				}
				sum = sum.Add(row.Amount)
			}

			if !sum.Equal(decimal.RequireFromString(tt.wantSum)) {
				t.Errorf("expected sum %s, got %s", tt.wantSum, sum)
			}
			drift := sum.Sub(decimal.RequireFromString(tt.amount)).Abs()
			maxDrift := decimal.NewFromFloat(0.005).Mul(decimal.NewFromInt(int64(tt.n)))
			if drift.GreaterThan(maxDrift) {
				t.Errorf("drift %s exceeds %s", drift, maxDrift)
			}
		})
	}
}

func TestSplitInstallments_IDsAreDistinct(t *testing.T) {
	rows := SplitInstallments(InstallmentPlan{
		Amount:       decimal.NewFromInt(60),
		Date:         date("2024-01-01"),
		PaymentType:  entity.PaymentTypeCreditCard,
		Installments: 6,
	})

	seen := map[uuid.UUID]bool{}
	for _, row := range rows {
		if seen[row.ID] {
			t.Fatalf("duplicate id %s", row.ID)
		}
		seen[row.ID] = true
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2024-03-31", 1, "2024-04-30"},
		{"2024-08-31", 4, "2024-12-31"},
		{"2024-12-15", 1, "2025-01-15"},
		{"2024-05-20", 0, "2024-05-20"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got := AddMonths(date(tt.start), tt.n).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.start, tt.n, got, tt.want)
			}
		})
	}
}
