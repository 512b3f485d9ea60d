// Package focus contains the Pomodoro task planner use cases.
package focus

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// DateLayout is the wire format of scheduled dates.
const DateLayout = "2006-01-02"

// TaskOutput represents a focus task in the output.
type TaskOutput struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Status           entity.TaskStatus   `json:"status"`
	Area             entity.TaskArea     `json:"area"`
	Priority         entity.TaskPriority `json:"priority"`
	EnergyType       entity.EnergyType   `json:"energy_type"`
	PomodoroEstimate int                 `json:"pomodoro_estimate"`
	ScheduledDate    *string             `json:"scheduled_date"`
	ScheduledTime    *string             `json:"scheduled_time"`
	CreatedAt        time.Time           `json:"created_at"`
}

func toTaskOutput(t *entity.FocusTask) *TaskOutput {
	out := &TaskOutput{
		ID:               t.ID,
		Title:            t.Title,
		Status:           t.Status,
		Area:             t.Area,
		Priority:         t.Priority,
		EnergyType:       t.EnergyType,
		PomodoroEstimate: t.PomodoroEstimate,
		ScheduledTime:    t.ScheduledTime,
		CreatedAt:        t.CreatedAt,
	}
	if t.ScheduledDate != nil {
		formatted := t.ScheduledDate.Format(DateLayout)
		out.ScheduledDate = &formatted
	}
	return out
}

func taskNotFound(err error) error {
	if errors.Is(err, domainerror.ErrTaskNotFound) {
		return domainerror.NewTaskError(domainerror.ErrCodeTaskNotFound, "task not found", domainerror.ErrTaskNotFound)
	}
	return fmt.Errorf("failed to find task: %w", err)
}
