// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/life-manager/backend/internal/application/usecase/focus"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/entrypoint/dto"
)

// FocusController handles the Pomodoro planner endpoints.
type FocusController struct {
	listUseCase       *focus.ListTasksUseCase
	createUseCase     *focus.CreateTaskUseCase
	scheduleUseCase   *focus.ScheduleTaskUseCase
	toggleUseCase     *focus.ToggleTaskUseCase
	unscheduleUseCase *focus.UnscheduleTaskUseCase
	deleteUseCase     *focus.DeleteTaskUseCase
}

// NewFocusController creates a new focus controller instance.
func NewFocusController(
	listUseCase *focus.ListTasksUseCase,
	createUseCase *focus.CreateTaskUseCase,
	scheduleUseCase *focus.ScheduleTaskUseCase,
	toggleUseCase *focus.ToggleTaskUseCase,
	unscheduleUseCase *focus.UnscheduleTaskUseCase,
	deleteUseCase *focus.DeleteTaskUseCase,
) *FocusController {
	return &FocusController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		scheduleUseCase:   scheduleUseCase,
		toggleUseCase:     toggleUseCase,
		unscheduleUseCase: unscheduleUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// List handles GET /focus/tasks requests. An optional date (YYYY-MM-DD)
// limits calendar tasks to that day and adds the hour slots.
func (c *FocusController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := focus.ListTasksInput{UserID: userID}
	if raw := ctx.Query("date"); raw != "" {
		date, err := dto.ParseDate(raw)
		if err != nil {
			badRequest(ctx, "date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidScheduleDate), nil)
			return
		}
		input.Date = &date
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Create handles POST /focus/tasks requests.
func (c *FocusController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse request body
	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidTaskTitle), err)
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToInput(userID))
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output)
}

// Schedule handles POST /focus/tasks/:id/schedule requests.
func (c *FocusController) Schedule(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	taskID, ok := parseIDParam(ctx, "Invalid task ID format")
	if !ok {
		return
	}

	// Parse request body
	var req dto.ScheduleTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidTimeSlot), err)
		return
	}

	// Execute use case
	output, err := c.scheduleUseCase.Execute(ctx.Request.Context(), focus.ScheduleTaskInput{
		UserID: userID,
		TaskID: taskID,
		Date:   req.Date,
		Target: req.Target,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Toggle handles POST /focus/tasks/:id/toggle requests.
func (c *FocusController) Toggle(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	taskID, ok := parseIDParam(ctx, "Invalid task ID format")
	if !ok {
		return
	}

	// Execute use case
	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), userID, taskID)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Unschedule handles POST /focus/tasks/:id/unschedule requests.
func (c *FocusController) Unschedule(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	taskID, ok := parseIDParam(ctx, "Invalid task ID format")
	if !ok {
		return
	}

	// Execute use case
	output, err := c.unscheduleUseCase.Execute(ctx.Request.Context(), userID, taskID)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Delete handles DELETE /focus/tasks/:id requests.
func (c *FocusController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	taskID, ok := parseIDParam(ctx, "Invalid task ID format")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), userID, taskID); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTaskError handles task errors and returns appropriate HTTP responses.
func (c *FocusController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		ctx.JSON(c.getStatusCodeForTaskError(taskErr.Code), dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	internalError(ctx)
}

// getStatusCodeForTaskError maps task error codes to HTTP status codes.
func (c *FocusController) getStatusCodeForTaskError(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTaskNotScheduled:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTaskTitle,
		domainerror.ErrCodeInvalidTaskArea,
		domainerror.ErrCodeInvalidTaskPriority,
		domainerror.ErrCodeInvalidEnergyType,
		domainerror.ErrCodeInvalidPomodoros,
		domainerror.ErrCodeInvalidTimeSlot,
		domainerror.ErrCodeInvalidScheduleDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
