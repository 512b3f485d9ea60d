// Package focus contains the Pomodoro task planner use cases.
package focus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/domain/valueobject"
)

// ScheduleTaskInput places a task on a drop target of the day planner.
type ScheduleTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
	Date   string
	Target string
}

// ScheduleTaskUseCase handles dropping a task on an hour slot.
type ScheduleTaskUseCase struct {
	taskRepo adapter.FocusTaskRepository
	cache    adapter.QueryCache
}

// NewScheduleTaskUseCase creates a new ScheduleTaskUseCase instance.
func NewScheduleTaskUseCase(taskRepo adapter.FocusTaskRepository, cache adapter.QueryCache) *ScheduleTaskUseCase {
	return &ScheduleTaskUseCase{taskRepo: taskRepo, cache: cache}
}

// Execute sets status scheduled with the date and the slot's start time.
// Tasks already on the calendar, completed ones included, are moved.
func (uc *ScheduleTaskUseCase) Execute(ctx context.Context, input ScheduleTaskInput) (*TaskOutput, error) {
	// Drop target is "slot-H" or a bare hour
	slot, err := valueobject.ParseTimeSlot(input.Target)
	if err != nil {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeInvalidTimeSlot, err.Error(), domainerror.ErrInvalidTimeSlot)
	}
	date, err := time.Parse(DateLayout, input.Date)
	if err != nil {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeInvalidScheduleDate, "date must be formatted as YYYY-MM-DD", domainerror.ErrInvalidScheduleDate)
	}

	task, err := uc.taskRepo.FindByID(ctx, input.UserID, input.TaskID)
	if err != nil {
		return nil, taskNotFound(err)
	}

	task.Schedule(date, slot.Time())
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to schedule task: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableFocusTasks)

	return toTaskOutput(task), nil
}
