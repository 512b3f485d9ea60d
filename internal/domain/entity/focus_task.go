// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is where a focus task sits in the planner.
type TaskStatus string

const (
	TaskStatusInbox     TaskStatus = "inbox"
	TaskStatusScheduled TaskStatus = "scheduled"
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskArea is the life area a task belongs to.
type TaskArea string

const (
	TaskAreaWork     TaskArea = "work"
	TaskAreaPersonal TaskArea = "personal"
	TaskAreaStudy    TaskArea = "study"
	TaskAreaHealth   TaskArea = "health"
)

// IsValid reports whether a is a known area.
func (a TaskArea) IsValid() bool {
	switch a {
	case TaskAreaWork, TaskAreaPersonal, TaskAreaStudy, TaskAreaHealth:
		return true
	}
	return false
}

// TaskPriority ranks tasks in the inbox.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// IsValid reports whether p is a known priority.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// EnergyType is the kind of focus a task needs.
type EnergyType string

const (
	EnergyTypeDeep    EnergyType = "deep"
	EnergyTypeShallow EnergyType = "shallow"
)

// IsValid reports whether e is a known energy type.
func (e EnergyType) IsValid() bool {
	return e == EnergyTypeDeep || e == EnergyTypeShallow
}

// Pomodoro estimate and title bounds.
const (
	MinPomodoroEstimate = 1
	MaxPomodoroEstimate = 12
	MaxTaskTitleLength  = 200
)

// FocusTask is a unit of work planned in pomodoros.
// ScheduledDate and ScheduledTime are set only while the task is scheduled or completed.
type FocusTask struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Title            string
	Status           TaskStatus
	Area             TaskArea
	Priority         TaskPriority
	EnergyType       EnergyType
	PomodoroEstimate int
	ScheduledDate    *time.Time
	ScheduledTime    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewFocusTask creates a task in the inbox.
func NewFocusTask(userID uuid.UUID, title string, area TaskArea, priority TaskPriority, energy EnergyType, pomodoros int) *FocusTask {
	now := time.Now().UTC()
	return &FocusTask{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            title,
		Status:           TaskStatusInbox,
		Area:             area,
		Priority:         priority,
		EnergyType:       energy,
		PomodoroEstimate: pomodoros,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Schedule places the task on a day at the given slot time.
func (t *FocusTask) Schedule(date time.Time, slotTime string) {
	t.Status = TaskStatusScheduled
	t.ScheduledDate = &date
	t.ScheduledTime = &slotTime
	t.UpdatedAt = time.Now().UTC()
}

// Unschedule moves the task back to the inbox.
func (t *FocusTask) Unschedule() {
	t.Status = TaskStatusInbox
	t.ScheduledDate = nil
	t.ScheduledTime = nil
	t.UpdatedAt = time.Now().UTC()
}

// ToggleCompleted flips between scheduled and completed.
// It returns false for inbox tasks, which cannot be completed.
func (t *FocusTask) ToggleCompleted() bool {
	switch t.Status {
	case TaskStatusScheduled:
		t.Status = TaskStatusCompleted
	case TaskStatusCompleted:
		t.Status = TaskStatusScheduled
	default:
		return false
	}
	t.UpdatedAt = time.Now().UTC()
	return true
}

// IsOnCalendar reports whether the task appears on the day planner.
func (t *FocusTask) IsOnCalendar() bool {
	return t.Status == TaskStatusScheduled || t.Status == TaskStatusCompleted
}
