// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/usecase/focus"
	"github.com/life-manager/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Title            string `json:"title"`
	Area             string `json:"area"`
	Priority         string `json:"priority"`
	EnergyType       string `json:"energy_type"`
	PomodoroEstimate int    `json:"pomodoro_estimate"`
}

// ToInput builds the use case input, filling the planner form defaults:
// work area, medium priority, shallow energy and one pomodoro.
func (r CreateTaskRequest) ToInput(userID uuid.UUID) focus.CreateTaskInput {
	input := focus.CreateTaskInput{
		UserID:           userID,
		Title:            r.Title,
		Area:             entity.TaskAreaWork,
		Priority:         entity.TaskPriorityMedium,
		EnergyType:       entity.EnergyTypeShallow,
		PomodoroEstimate: r.PomodoroEstimate,
	}
	if r.Area != "" {
		input.Area = entity.TaskArea(r.Area)
	}
	if r.Priority != "" {
		input.Priority = entity.TaskPriority(r.Priority)
	}
	if r.EnergyType != "" {
		input.EnergyType = entity.EnergyType(r.EnergyType)
	}
	if input.PomodoroEstimate == 0 {
		input.PomodoroEstimate = entity.MinPomodoroEstimate
	}
	return input
}

// ScheduleTaskRequest drops a task on a planner slot.
// Target is a slot id ("slot-14") or a bare hour.
type ScheduleTaskRequest struct {
	Date   string `json:"date" binding:"required"`
	Target string `json:"target" binding:"required"`
}
