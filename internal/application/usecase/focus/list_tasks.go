// Package focus contains the Pomodoro task planner use cases.
package focus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
	"github.com/life-manager/backend/internal/domain/valueobject"
)

// ListTasksInput represents the input for listing tasks.
// A nil Date returns every scheduled task.
type ListTasksInput struct {
	UserID uuid.UUID
	Date   *time.Time
}

// SlotOutput is one hour of the day planner with the tasks placed on it.
type SlotOutput struct {
	ID    string        `json:"id"`
	Hour  int           `json:"hour"`
	Label string        `json:"label"`
	Tasks []*TaskOutput `json:"tasks"`
}

// ListTasksOutput splits tasks between the inbox and the calendar.
type ListTasksOutput struct {
	Inbox     []*TaskOutput `json:"inbox"`
	Scheduled []*TaskOutput `json:"scheduled"`
	Slots     []*SlotOutput `json:"slots,omitempty"`
}

// ListTasksUseCase handles listing tasks logic.
type ListTasksUseCase struct {
	taskRepo adapter.FocusTaskRepository
	cache    adapter.QueryCache
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.FocusTaskRepository, cache adapter.QueryCache) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo, cache: cache}
}

// Execute lists tasks newest first. When a date is given the scheduled
// tasks are also laid out on the day's hour slots.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	key := "all"
	if input.Date != nil {
		key = input.Date.Format(DateLayout)
	}

	return readthrough.Load(ctx, uc.cache, input.UserID, adapter.TableFocusTasks, key,
		func(ctx context.Context) (*ListTasksOutput, error) {
			tasks, err := uc.taskRepo.FindByUser(ctx, input.UserID, input.Date)
			if err != nil {
				return nil, fmt.Errorf("failed to list tasks: %w", err)
			}

			output := &ListTasksOutput{
				Inbox:     []*TaskOutput{},
				Scheduled: []*TaskOutput{},
			}
			for _, task := range tasks {
				if task.IsOnCalendar() {
					output.Scheduled = append(output.Scheduled, toTaskOutput(task))
				} else {
					output.Inbox = append(output.Inbox, toTaskOutput(task))
				}
			}
			if input.Date != nil {
				output.Slots = layoutSlots(output.Scheduled)
			}
			return output, nil
		})
}

// layoutSlots places tasks on the slot matching the hour of scheduled_time.
func layoutSlots(scheduled []*TaskOutput) []*SlotOutput {
	daySlots := valueobject.DaySlots()
	slots := make([]*SlotOutput, len(daySlots))
	byHour := make(map[int]*SlotOutput, len(daySlots))
	for i, s := range daySlots {
		slots[i] = &SlotOutput{ID: s.ID(), Hour: s.Hour, Label: s.Time()[:5], Tasks: []*TaskOutput{}}
		byHour[s.Hour] = slots[i]
	}

	for _, task := range scheduled {
		if task.ScheduledTime == nil {
			continue
		}
		slot, err := valueobject.ParseTimeSlot((*task.ScheduledTime)[:2])
		if err != nil {
			continue
		}
		byHour[slot.Hour].Tasks = append(byHour[slot.Hour].Tasks, task)
	}
	return slots
}
