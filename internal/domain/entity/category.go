// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryGroup is the budget group a category rolls up into.
type CategoryGroup string

const (
	CategoryGroupEssentials CategoryGroup = "essentials"
	CategoryGroupLifestyle  CategoryGroup = "lifestyle"
	CategoryGroupNone       CategoryGroup = "none"
)

// IsValid reports whether g is a known group.
func (g CategoryGroup) IsValid() bool {
	switch g {
	case CategoryGroupEssentials, CategoryGroupLifestyle, CategoryGroupNone:
		return true
	}
	return false
}

// Category is a spending category with a monthly budget limit.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	BudgetLimit decimal.Decimal
	Group       CategoryGroup
	CreatedAt   time.Time
}

// NewCategory creates a new Category entity.
// A zero budget limit means the category has no budget.
func NewCategory(userID uuid.UUID, name string, budgetLimit decimal.Decimal, group CategoryGroup) *Category {
	if group == "" {
		group = CategoryGroupNone
	}

	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		BudgetLimit: budgetLimit,
		Group:       group,
		CreatedAt:   time.Now().UTC(),
	}
}

// HasNoBudget reports whether the category has no budget limit set.
func (c *Category) HasNoBudget() bool {
	return c.BudgetLimit.IsZero()
}
