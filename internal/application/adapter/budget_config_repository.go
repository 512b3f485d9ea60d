// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/domain/entity"
)

// BudgetConfigRepository persists the per-user budget configuration.
type BudgetConfigRepository interface {
	// FindByUser returns the user's configuration or ErrBudgetConfigNotFound.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.BudgetConfig, error)

	// Upsert inserts or updates the row keyed by user_id.
	Upsert(ctx context.Context, config *entity.BudgetConfig) error
}
