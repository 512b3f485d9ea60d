// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	BudgetLimit decimal.Decimal      `json:"budget_limit"`
	Group       entity.CategoryGroup `json:"group"`
	CreatedAt   time.Time            `json:"created_at"`
}

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	BudgetLimit decimal.Decimal
	Group       entity.CategoryGroup
}

// CreateCategoryOutput represents the output of category creation.
// DuplicateName is set when another category already uses the name; the
// category is created anyway.
type CreateCategoryOutput struct {
	Category      *CategoryOutput
	DuplicateName bool
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.QueryCache
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, cache adapter.QueryCache) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateCategoryFields(&name, &input.BudgetLimit, &input.Group); err != nil {
		return nil, err
	}

	// Duplicate names are allowed, only flagged
	duplicate, err := uc.categoryRepo.ExistsByName(ctx, input.UserID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := entity.NewCategory(input.UserID, name, input.BudgetLimit, input.Group)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableCategories)

	return &CreateCategoryOutput{
		Category:      toCategoryOutput(category),
		DuplicateName: duplicate,
	}, nil
}

// validateCategoryFields checks whichever fields are present.
func validateCategoryFields(name *string, budgetLimit *decimal.Decimal, group *entity.CategoryGroup) error {
	if name != nil {
		if *name == "" {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeMissingCategoryFields,
				"name is required",
				nil,
			)
		}
		if len([]rune(*name)) > MaxCategoryNameLength {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameTooLong,
				fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameTooLong,
			)
		}
	}
	if budgetLimit != nil && budgetLimit.IsNegative() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"budget limit must not be negative",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	if group != nil && *group != "" && !group.IsValid() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryGroup,
			"group must be 'essentials', 'lifestyle' or 'none'",
			domainerror.ErrInvalidCategoryGroup,
		)
	}
	return nil
}

func toCategoryOutput(c *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:          c.ID,
		Name:        c.Name,
		BudgetLimit: c.BudgetLimit,
		Group:       c.Group,
		CreatedAt:   c.CreatedAt,
	}
}
