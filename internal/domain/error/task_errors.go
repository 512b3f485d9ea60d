// Package error defines domain-specific errors for the Life Manager application.
package error

import "errors"

// Focus task domain errors.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskTitle    = errors.New("task title must be between 1 and 200 characters")
	ErrInvalidTaskArea     = errors.New("invalid task area")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
	ErrInvalidEnergyType   = errors.New("invalid energy type")
	ErrInvalidPomodoros    = errors.New("pomodoro estimate must be between 1 and 12")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrTaskNotScheduled    = errors.New("only scheduled tasks can be completed")
	ErrInvalidScheduleDate = errors.New("invalid schedule date")
)

// TaskErrorCode defines error codes for focus task errors.
// Format: TASK-XXYYYY where XX is category and YYYY is specific error.
type TaskErrorCode string

const (
	ErrCodeTaskNotFound        TaskErrorCode = "TASK-010001"
	ErrCodeInvalidTaskTitle    TaskErrorCode = "TASK-010002"
	ErrCodeInvalidTaskArea     TaskErrorCode = "TASK-010003"
	ErrCodeInvalidTaskPriority TaskErrorCode = "TASK-010004"
	ErrCodeInvalidEnergyType   TaskErrorCode = "TASK-010005"
	ErrCodeTaskNotScheduled    TaskErrorCode = "TASK-010006"
	ErrCodeInvalidPomodoros    TaskErrorCode = "TASK-010007"
	ErrCodeInvalidTimeSlot     TaskErrorCode = "TASK-020001"
	ErrCodeInvalidScheduleDate TaskErrorCode = "TASK-020002"
)

// TaskError represents a focus task error with code and message.
type TaskError struct {
	Code    TaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new TaskError with the given code and message.
func NewTaskError(code TaskErrorCode, message string, err error) *TaskError {
	return &TaskError{Code: code, Message: message, Err: err}
}
