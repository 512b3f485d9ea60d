// Package dashboard contains the finance summary and its aggregates.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/application/usecase/budget"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/domain/valueobject"
)

// GetFinanceSummaryInput selects the month to summarize. An empty Month
// means the current month.
type GetFinanceSummaryInput struct {
	UserID uuid.UUID
	Month  string
}

// GetFinanceSummaryOutput is everything the finance page shows for a month.
type GetFinanceSummaryOutput struct {
	Month            string                     `json:"month"`
	Summary          MonthlySummary             `json:"summary"`
	Categories       []CategoryProgress         `json:"categories"`
	Groups           GroupSpend                 `json:"groups"`
	CreditCard       CreditCardStatus           `json:"credit_card"`
	WeeklyAllowance  WeeklyAllowance            `json:"weekly_allowance"`
	WeeklyTrend      []WeekSpend                `json:"weekly_trend"`
	InvestmentGoal   InvestmentGoal             `json:"investment_goal"`
	BudgetConfig     *budget.BudgetConfigOutput `json:"budget_config"`
	TransactionCount int                        `json:"transaction_count"`
}

// GetFinanceSummaryUseCase aggregates a month of spending.
type GetFinanceSummaryUseCase struct {
	categoryRepo     adapter.CategoryRepository
	transactionRepo  adapter.TransactionRepository
	budgetConfigRepo adapter.BudgetConfigRepository
	cache            adapter.QueryCache
	now              func() time.Time
}

// NewGetFinanceSummaryUseCase creates a new GetFinanceSummaryUseCase instance.
// now may be nil to use the wall clock.
func NewGetFinanceSummaryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	budgetConfigRepo adapter.BudgetConfigRepository,
	cache adapter.QueryCache,
	now func() time.Time,
) *GetFinanceSummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetFinanceSummaryUseCase{
		categoryRepo:     categoryRepo,
		transactionRepo:  transactionRepo,
		budgetConfigRepo: budgetConfigRepo,
		cache:            cache,
		now:              now,
	}
}

// Execute loads the month's categories, transactions and budget
// configuration concurrently and derives every aggregate.
func (uc *GetFinanceSummaryUseCase) Execute(ctx context.Context, input GetFinanceSummaryInput) (*GetFinanceSummaryOutput, error) {
	now := uc.now().UTC()
	month := strings.TrimSpace(input.Month)
	if month == "" {
		month = now.Format(MonthLayout)
	}
	start, end, err := ParseMonth(month)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month must be formatted as YYYY-MM",
			domainerror.ErrInvalidMonth,
		)
	}

	var (
		categories   []*entity.Category
		transactions []*entity.Transaction
		config       *entity.BudgetConfig
		isDefault    bool
	)

	// The three sources are independent; load them in parallel
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = readthrough.Load(gctx, uc.cache, input.UserID, adapter.TableCategories, "entities",
			func(ctx context.Context) ([]*entity.Category, error) {
				return uc.categoryRepo.FindByUser(ctx, input.UserID)
			})
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = readthrough.Load(gctx, uc.cache, input.UserID, adapter.TableTransactions, "entities:"+month,
			func(ctx context.Context) ([]*entity.Transaction, error) {
				rows, err := uc.transactionRepo.FindByFilter(ctx, entity.TransactionFilter{
					UserID:    input.UserID,
					StartDate: start,
					EndDate:   end,
				})
				if err != nil {
					return nil, err
				}
				txs := make([]*entity.Transaction, len(rows))
				for i, row := range rows {
					txs[i] = row.Transaction
				}
				return txs, nil
			})
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		config, isDefault, err = budget.LoadBudgetConfig(gctx, uc.budgetConfigRepo, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildFinanceSummary(month, categories, transactions, config, isDefault, DaysPassed(start, end, now), ReferenceDay(start, end, now)), nil
}

// BuildFinanceSummary derives every aggregate from already-loaded rows.
func BuildFinanceSummary(
	month string,
	categories []*entity.Category,
	transactions []*entity.Transaction,
	config *entity.BudgetConfig,
	isDefaultConfig bool,
	daysPassed, referenceDay int,
) *GetFinanceSummaryOutput {
	spend := SpendByCategory(transactions)

	totalSpent := decimal.Zero
	for _, tx := range transactions {
		totalSpent = totalSpent.Add(tx.Amount)
	}
	// Free spending is tracked through its own category
	totalBudget := decimal.Zero
	freeSpent := decimal.Zero
	for _, c := range categories {
		totalBudget = totalBudget.Add(c.BudgetLimit)
		if strings.EqualFold(c.Name, valueobject.FreeSpendingCategoryName) {
			freeSpent = freeSpent.Add(spend[c.ID])
		}
	}

	return &GetFinanceSummaryOutput{
		Month:            month,
		Summary:          BuildMonthlySummary(totalSpent, totalBudget, daysPassed),
		Categories:       BuildCategoryProgress(categories, spend),
		Groups:           BuildGroupSpend(categories, spend, config),
		CreditCard:       BuildCreditCardStatus(transactions, config),
		WeeklyAllowance:  BuildWeeklyAllowance(freeSpent, config.FreeSpendingWeekly(), config.FreeSpendingAmount, AllowanceWeek(referenceDay)),
		WeeklyTrend:      BuildWeeklyTrend(transactions),
		InvestmentGoal:   BuildInvestmentGoal(config, totalSpent),
		BudgetConfig:     budget.ToBudgetConfigOutput(config, isDefaultConfig),
		TransactionCount: len(transactions),
	}
}
