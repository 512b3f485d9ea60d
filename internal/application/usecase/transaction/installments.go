// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

// Installment bounds for credit-card purchases.
const (
	MinInstallments = 1
	MaxInstallments = 12
)

// InstallmentPlan describes a purchase to be split into monthly rows.
type InstallmentPlan struct {
	UserID       uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Date         time.Time
	CategoryID   *uuid.UUID
	PaymentType  entity.PaymentType
	Installments int
}

// SplitInstallments turns a plan into one transaction per installment.
//
// Every row carries Amount/N rounded to cents and falls on the purchase day
// of each following month, clamped to the month's last day. The rounding
// remainder is not redistributed, so the rows may sum to a few cents more or
// less than Amount.
func SplitInstallments(plan InstallmentPlan) []*entity.Transaction {
	n := plan.Installments
	if n < MinInstallments {
		n = MinInstallments
	}

	perRow := plan.Amount.Div(decimal.NewFromInt(int64(n))).Round(2)
	rows := make([]*entity.Transaction, 0, n)
	for i := 0; i < n; i++ {
		tx := entity.NewTransaction(
			plan.UserID,
			plan.Description,
			perRow,
			AddMonths(plan.Date, i),
			plan.CategoryID,
			plan.PaymentType,
		)
		current, total := i+1, n
		tx.InstallmentCurrent = &current
		tx.InstallmentTotal = &total
		rows = append(rows, tx)
	}
	return rows
}

// AddMonths adds n calendar months, clamping the day to the target month's
// length (Jan 31 + 1 month = Feb 28 or 29).
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return first.AddDate(0, 0, day-1)
}
