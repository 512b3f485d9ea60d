// Package focus contains the Pomodoro task planner use cases.
package focus

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.FocusTaskRepository
	cache    adapter.QueryCache
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.FocusTaskRepository, cache adapter.QueryCache) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{taskRepo: taskRepo, cache: cache}
}

// Execute deletes the task.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := uc.taskRepo.FindByID(ctx, userID, taskID); err != nil {
		return taskNotFound(err)
	}
	if err := uc.taskRepo.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, userID, adapter.TableFocusTasks)
	return nil
}
