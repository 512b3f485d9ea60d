// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/usecase/category"
	"github.com/life-manager/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string           `json:"name" binding:"required"`
	BudgetLimit *decimal.Decimal `json:"budget_limit,omitempty"`
	Group       string           `json:"group,omitempty"`
}

// ToInput builds the use case input. Budget limit defaults to zero and group to none.
func (r CreateCategoryRequest) ToInput(userID uuid.UUID) category.CreateCategoryInput {
	input := category.CreateCategoryInput{
		UserID:      userID,
		Name:        r.Name,
		BudgetLimit: decimal.Zero,
		Group:       entity.CategoryGroupNone,
	}
	if r.BudgetLimit != nil {
		input.BudgetLimit = *r.BudgetLimit
	}
	if r.Group != "" {
		input.Group = entity.CategoryGroup(r.Group)
	}
	return input
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name,omitempty"`
	BudgetLimit *decimal.Decimal `json:"budget_limit,omitempty"`
	Group       *string          `json:"group,omitempty"`
}

// ToInput builds the use case input.
func (r UpdateCategoryRequest) ToInput(userID, categoryID uuid.UUID) category.UpdateCategoryInput {
	input := category.UpdateCategoryInput{
		UserID:      userID,
		CategoryID:  categoryID,
		Name:        r.Name,
		BudgetLimit: r.BudgetLimit,
	}
	if r.Group != nil {
		group := entity.CategoryGroup(*r.Group)
		input.Group = &group
	}
	return input
}

// CategoryResponse wraps a single category.
// DuplicateName warns that another category already had the same name.
type CategoryResponse struct {
	Category      *category.CategoryOutput `json:"category"`
	DuplicateName bool                     `json:"duplicate_name,omitempty"`
}

// SeedCategoriesResponse lists the categories created by the seed.
type SeedCategoriesResponse struct {
	Created []*category.CategoryOutput `json:"created"`
	Skipped int                        `json:"skipped"`
}
