// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase deletes categories that no transaction references.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.QueryCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, cache adapter.QueryCache) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := uc.categoryRepo.FindByID(ctx, input.UserID, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	// Categories still used by transactions cannot be deleted
	linked, err := uc.categoryRepo.CountTransactions(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if linked > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category has %d linked transactions", linked),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.UserID, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableCategories)

	return nil
}
