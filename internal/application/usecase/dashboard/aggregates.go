// Package dashboard contains the finance summary and its aggregates.
package dashboard

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
	"github.com/life-manager/backend/internal/domain/valueobject"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(75)
)

// SpendByCategory sums transaction amounts per category id.
// Uncategorized rows are ignored.
func SpendByCategory(txs []*entity.Transaction) map[uuid.UUID]decimal.Decimal {
	spend := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range txs {
		if tx.CategoryID == nil {
			continue
		}
		spend[*tx.CategoryID] = spend[*tx.CategoryID].Add(tx.Amount)
	}
	return spend
}

// PercentageUsed is spent/budget as a percentage clamped to 100. A category
// without budget reads 100 once anything was spent and 0 otherwise.
func PercentageUsed(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsPositive() {
		return decimal.Min(spent.Div(budget).Mul(hundred), hundred).Round(2)
	}
	if spent.IsPositive() {
		return hundred
	}
	return decimal.Zero
}

// IsOverBudget compares the unclamped amounts. Categories without a budget
// are never over budget.
func IsOverBudget(spent, budget decimal.Decimal) bool {
	return budget.IsPositive() && spent.GreaterThan(budget)
}

// CategoryProgress is the month's spend against one category budget.
type CategoryProgress struct {
	CategoryID   uuid.UUID            `json:"category_id"`
	Name         string               `json:"name"`
	Group        entity.CategoryGroup `json:"group"`
	BudgetLimit  decimal.Decimal      `json:"budget_limit"`
	Spent        decimal.Decimal      `json:"spent"`
	Percentage   decimal.Decimal      `json:"percentage"`
	IsOverBudget bool                 `json:"is_over_budget"`
	HasNoBudget  bool                 `json:"has_no_budget"`
}

// BuildCategoryProgress returns one entry per category, in input order.
func BuildCategoryProgress(categories []*entity.Category, spend map[uuid.UUID]decimal.Decimal) []CategoryProgress {
	progress := make([]CategoryProgress, 0, len(categories))
	for _, c := range categories {
		spent := spend[c.ID]
		progress = append(progress, CategoryProgress{
			CategoryID:   c.ID,
			Name:         c.Name,
			Group:        c.Group,
			BudgetLimit:  c.BudgetLimit,
			Spent:        spent,
			Percentage:   PercentageUsed(spent, c.BudgetLimit),
			IsOverBudget: IsOverBudget(spent, c.BudgetLimit),
			HasNoBudget:  c.HasNoBudget(),
		})
	}
	return progress
}

// GroupSpend compares essentials and lifestyle spend with their caps.
type GroupSpend struct {
	Essentials           decimal.Decimal `json:"essentials"`
	EssentialsCap        decimal.Decimal `json:"essentials_cap"`
	EssentialsPercentage decimal.Decimal `json:"essentials_percentage"`
	Lifestyle            decimal.Decimal `json:"lifestyle"`
	LifestyleCap         decimal.Decimal `json:"lifestyle_cap"`
	LifestylePercentage  decimal.Decimal `json:"lifestyle_percentage"`
}

// BuildGroupSpend sums category spend into the essentials and lifestyle groups.
func BuildGroupSpend(categories []*entity.Category, spend map[uuid.UUID]decimal.Decimal, config *entity.BudgetConfig) GroupSpend {
	var essentials, lifestyle decimal.Decimal
	for _, c := range categories {
		switch c.Group {
		case entity.CategoryGroupEssentials:
			essentials = essentials.Add(spend[c.ID])
		case entity.CategoryGroupLifestyle:
			lifestyle = lifestyle.Add(spend[c.ID])
		}
	}
	return GroupSpend{
		Essentials:           essentials,
		EssentialsCap:        config.EssentialsCap(),
		EssentialsPercentage: PercentageUsed(essentials, config.EssentialsCap()),
		Lifestyle:            lifestyle,
		LifestyleCap:         config.LifestyleCap(),
		LifestylePercentage:  PercentageUsed(lifestyle, config.LifestyleCap()),
	}
}

// MonthlySummary holds the headline figures of the month.
type MonthlySummary struct {
	TotalSpent   decimal.Decimal `json:"total_spent"`
	TotalBudget  decimal.Decimal `json:"total_budget"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentUsed  decimal.Decimal `json:"percent_used"`
	DaysPassed   int             `json:"days_passed"`
	DailyAverage decimal.Decimal `json:"daily_average"`
	IsWarning    bool            `json:"is_warning"`
	IsOverBudget bool            `json:"is_over_budget"`
}

// BuildMonthlySummary derives the headline figures. PercentUsed is not clamped.
func BuildMonthlySummary(totalSpent, totalBudget decimal.Decimal, daysPassed int) MonthlySummary {
	summary := MonthlySummary{
		TotalSpent:   totalSpent,
		TotalBudget:  totalBudget,
		Remaining:    totalBudget.Sub(totalSpent),
		PercentUsed:  decimal.Zero,
		DaysPassed:   daysPassed,
		DailyAverage: decimal.Zero,
	}
	if totalBudget.IsPositive() {
		summary.PercentUsed = totalSpent.Div(totalBudget).Mul(hundred).Round(2)
	}
	if daysPassed > 0 {
		summary.DailyAverage = totalSpent.Div(decimal.NewFromInt(int64(daysPassed))).Round(2)
	}
	summary.IsOverBudget = summary.PercentUsed.GreaterThanOrEqual(hundred) && totalBudget.IsPositive()
	summary.IsWarning = summary.PercentUsed.GreaterThan(warningThreshold) && summary.PercentUsed.LessThan(hundred)
	return summary
}

// CreditCardStatus is the month's card spend under the traffic light.
type CreditCardStatus struct {
	Spent       decimal.Decimal          `json:"spent"`
	Light       valueobject.TrafficLight `json:"light"`
	Percentage  decimal.Decimal          `json:"percentage"`
	GreenLimit  decimal.Decimal          `json:"green_limit"`
	YellowLimit decimal.Decimal          `json:"yellow_limit"`
	RedLimit    decimal.Decimal          `json:"red_limit"`
}

// BuildCreditCardStatus sums credit-card rows and classifies the total.
func BuildCreditCardStatus(txs []*entity.Transaction, config *entity.BudgetConfig) CreditCardStatus {
	spent := decimal.Zero
	for _, tx := range txs {
		if tx.PaymentType == entity.PaymentTypeCreditCard {
			spent = spent.Add(tx.Amount)
		}
	}
	limits := valueobject.CreditCardLimits{
		Green:  config.CreditCardGreen,
		Yellow: config.CreditCardYellow,
		Red:    config.CreditCardRed,
	}
	return CreditCardStatus{
		Spent:       spent,
		Light:       limits.Classify(spent),
		Percentage:  limits.Progress(spent).Round(2),
		GreenLimit:  limits.Green,
		YellowLimit: limits.Yellow,
		RedLimit:    limits.Red,
	}
}

// WeeklyAllowance tracks free spending against a weekly allowance.
type WeeklyAllowance struct {
	CurrentWeek        int             `json:"current_week"`
	WeeklyBudget       decimal.Decimal `json:"weekly_budget"`
	MonthlyBudget      decimal.Decimal `json:"monthly_budget"`
	Spent              decimal.Decimal `json:"spent"`
	BudgetUntilNow     decimal.Decimal `json:"budget_until_now"`
	Difference         decimal.Decimal `json:"difference"`
	IsOnTrack          bool            `json:"is_on_track"`
	MonthlyPercentage  decimal.Decimal `json:"monthly_percentage"`
	ExpectedPercentage decimal.Decimal `json:"expected_percentage"`
}

// BuildWeeklyAllowance compares spent with the allowance accrued up to week.
func BuildWeeklyAllowance(spent, weekly, monthly decimal.Decimal, week int) WeeklyAllowance {
	budgetUntilNow := weekly.Mul(decimal.NewFromInt(int64(week)))
	difference := budgetUntilNow.Sub(spent)
	return WeeklyAllowance{
		CurrentWeek:        week,
		WeeklyBudget:       weekly,
		MonthlyBudget:      monthly,
		Spent:              spent,
		BudgetUntilNow:     budgetUntilNow,
		Difference:         difference,
		IsOnTrack:          !difference.IsNegative(),
		MonthlyPercentage:  PercentageUsed(spent, monthly),
		ExpectedPercentage: decimal.NewFromInt(int64(week)).Div(decimal.NewFromInt(allowanceWeeks)).Mul(hundred),
	}
}

// WeekSpend is the spend of one week-of-month bucket.
type WeekSpend struct {
	Week   int             `json:"week"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// BuildWeeklyTrend buckets spend into weeks 1..5 of the month.
func BuildWeeklyTrend(txs []*entity.Transaction) []WeekSpend {
	trend := make([]WeekSpend, 5)
	for i := range trend {
		trend[i] = WeekSpend{Week: i + 1, Label: "S" + strconv.Itoa(i+1), Amount: decimal.Zero}
	}
	for _, tx := range txs {
		week := WeekOfMonth(tx.Date.Day())
		trend[week-1].Amount = trend[week-1].Amount.Add(tx.Amount)
	}
	return trend
}

// InvestmentGoal compares what the month leaves for investing with the target.
type InvestmentGoal struct {
	Target     decimal.Decimal `json:"target"`
	Available  decimal.Decimal `json:"available"`
	Percentage decimal.Decimal `json:"percentage"`
	Remaining  decimal.Decimal `json:"remaining"`
	IsComplete bool            `json:"is_complete"`
}

// BuildInvestmentGoal treats income minus spend as the amount available to
// invest this month.
func BuildInvestmentGoal(config *entity.BudgetConfig, totalSpent decimal.Decimal) InvestmentGoal {
	target := config.InvestmentTarget()
	available := decimal.Max(config.BaseIncome.Sub(totalSpent), decimal.Zero)

	goal := InvestmentGoal{
		Target:     target,
		Available:  available,
		Percentage: hundred,
		Remaining:  decimal.Max(target.Sub(available), decimal.Zero),
		IsComplete: available.GreaterThanOrEqual(target),
	}
	if target.IsPositive() {
		goal.Percentage = decimal.Min(available.Div(target).Mul(hundred), hundred).Round(2)
	}
	return goal
}
