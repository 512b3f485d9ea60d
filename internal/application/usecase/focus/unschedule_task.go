// Package focus contains the Pomodoro task planner use cases.
package focus

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// UnscheduleTaskUseCase moves a task back to the inbox.
type UnscheduleTaskUseCase struct {
	taskRepo adapter.FocusTaskRepository
	cache    adapter.QueryCache
}

// NewUnscheduleTaskUseCase creates a new UnscheduleTaskUseCase instance.
func NewUnscheduleTaskUseCase(taskRepo adapter.FocusTaskRepository, cache adapter.QueryCache) *UnscheduleTaskUseCase {
	return &UnscheduleTaskUseCase{taskRepo: taskRepo, cache: cache}
}

// Execute clears the date and time and sets status inbox.
func (uc *UnscheduleTaskUseCase) Execute(ctx context.Context, userID, taskID uuid.UUID) (*TaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, taskNotFound(err)
	}

	task.Unschedule()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to unschedule task: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, userID, adapter.TableFocusTasks)

	return toTaskOutput(task), nil
}
