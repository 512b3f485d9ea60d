// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput `json:"categories"`
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.QueryCache
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, cache adapter.QueryCache) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute lists the user's categories ordered by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	return readthrough.Load(ctx, uc.cache, input.UserID, adapter.TableCategories, "list",
		func(ctx context.Context) (*ListCategoriesOutput, error) {
			categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to list categories: %w", err)
			}

			output := &ListCategoriesOutput{Categories: make([]*CategoryOutput, len(categories))}
			for i, c := range categories {
				output.Categories[i] = toCategoryOutput(c)
			}
			return output, nil
		})
}
