// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/domain/entity"
)

// FocusTaskRepository defines persistence operations for focus tasks.
type FocusTaskRepository interface {
	Create(ctx context.Context, task *entity.FocusTask) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.FocusTask, error)

	// FindByUser lists tasks newest first. A non-nil date keeps inbox tasks
	// plus tasks scheduled on that day.
	FindByUser(ctx context.Context, userID uuid.UUID, date *time.Time) ([]*entity.FocusTask, error)

	Update(ctx context.Context, task *entity.FocusTask) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
