// Package focus contains the Pomodoro task planner use cases.
package focus

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID           uuid.UUID
	Title            string
	Area             entity.TaskArea
	Priority         entity.TaskPriority
	EnergyType       entity.EnergyType
	PomodoroEstimate int
}

// CreateTaskUseCase adds a task to the inbox.
type CreateTaskUseCase struct {
	taskRepo adapter.FocusTaskRepository
	cache    adapter.QueryCache
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.FocusTaskRepository, cache adapter.QueryCache) *CreateTaskUseCase {
	return &CreateTaskUseCase{taskRepo: taskRepo, cache: cache}
}

// Execute validates and stores the task with status inbox.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*TaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > entity.MaxTaskTitleLength {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeInvalidTaskTitle, "title must be between 1 and 200 characters", domainerror.ErrInvalidTaskTitle)
	}
	if !input.Area.IsValid() {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeInvalidTaskArea, "area must be 'work', 'personal', 'study' or 'health'", domainerror.ErrInvalidTaskArea)
	}
	if !input.Priority.IsValid() {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeInvalidTaskPriority, "priority must be 'high', 'medium' or 'low'", domainerror.ErrInvalidTaskPriority)
	}
	if !input.EnergyType.IsValid() {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeInvalidEnergyType, "energy type must be 'deep' or 'shallow'", domainerror.ErrInvalidEnergyType)
	}
	if input.PomodoroEstimate < entity.MinPomodoroEstimate || input.PomodoroEstimate > entity.MaxPomodoroEstimate {
		return nil, domainerror.NewTaskError(domainerror.ErrCodeInvalidPomodoros, "pomodoro estimate must be between 1 and 12", domainerror.ErrInvalidPomodoros)
	}

	task := entity.NewFocusTask(input.UserID, title, input.Area, input.Priority, input.EnergyType, input.PomodoroEstimate)
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.TableFocusTasks)

	return toTaskOutput(task), nil
}
