// Package focus contains the Pomodoro task planner use cases.
package focus

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// ToggleTaskUseCase flips a task between scheduled and completed.
type ToggleTaskUseCase struct {
	taskRepo adapter.FocusTaskRepository
	cache    adapter.QueryCache
}

// NewToggleTaskUseCase creates a new ToggleTaskUseCase instance.
func NewToggleTaskUseCase(taskRepo adapter.FocusTaskRepository, cache adapter.QueryCache) *ToggleTaskUseCase {
	return &ToggleTaskUseCase{taskRepo: taskRepo, cache: cache}
}

// Execute toggles completion. Inbox tasks are rejected.
func (uc *ToggleTaskUseCase) Execute(ctx context.Context, userID, taskID uuid.UUID) (*TaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, taskNotFound(err)
	}

	// scheduled <-> completed
	if !task.ToggleCompleted() {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeTaskNotScheduled, "only scheduled tasks can be completed", domainerror.ErrTaskNotScheduled)
	}
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, userID, adapter.TableFocusTasks)

	return toTaskOutput(task), nil
}
