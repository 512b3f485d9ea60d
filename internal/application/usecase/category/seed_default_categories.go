// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
	"github.com/life-manager/backend/internal/domain/valueobject"
)

// SeedDefaultCategoriesOutput lists the categories the seed created.
type SeedDefaultCategoriesOutput struct {
	Created []*CategoryOutput
	Skipped int
}

// SeedDefaultCategoriesUseCase creates the default budget categories a user
// does not have yet. Names are compared case-insensitively.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.QueryCache
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository, cache adapter.QueryCache) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the seed.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context, userID uuid.UUID) (*SeedDefaultCategoriesOutput, error) {
	existing, err := uc.categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	// Existing names, case-insensitive
	taken := make(map[string]bool, len(existing))
	for _, c := range existing {
		taken[strings.ToLower(c.Name)] = true
	}

	defaults := valueobject.DefaultCategories()
	var toCreate []*entity.Category
	for _, seed := range defaults {
		if taken[strings.ToLower(seed.Name)] {
			continue
		}
		toCreate = append(toCreate, entity.NewCategory(userID, seed.Name, seed.BudgetLimit, seed.Group))
	}

	output := &SeedDefaultCategoriesOutput{
		Created: make([]*CategoryOutput, 0, len(toCreate)),
		Skipped: len(defaults) - len(toCreate),
	}
	if len(toCreate) == 0 {
		return output, nil
	}

	if err := uc.categoryRepo.CreateBatch(ctx, toCreate); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, userID, adapter.TableCategories)

	for _, c := range toCreate {
		output.Created = append(output.Created, toCategoryOutput(c))
	}
	return output, nil
}
