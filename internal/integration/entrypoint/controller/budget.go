// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/life-manager/backend/internal/application/usecase/budget"
	"github.com/life-manager/backend/internal/application/usecase/dashboard"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles the budget configuration and the finance dashboard.
type BudgetController struct {
	getConfigUseCase    *budget.GetBudgetConfigUseCase
	upsertConfigUseCase *budget.UpsertBudgetConfigUseCase
	summaryUseCase      *dashboard.GetFinanceSummaryUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getConfigUseCase *budget.GetBudgetConfigUseCase,
	upsertConfigUseCase *budget.UpsertBudgetConfigUseCase,
	summaryUseCase *dashboard.GetFinanceSummaryUseCase,
) *BudgetController {
	return &BudgetController{
		getConfigUseCase:    getConfigUseCase,
		upsertConfigUseCase: upsertConfigUseCase,
		summaryUseCase:      summaryUseCase,
	}
}

// GetConfig handles GET /budget-config requests.
func (c *BudgetController) GetConfig(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.getConfigUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// UpsertConfig handles PUT /budget-config requests.
func (c *BudgetController) UpsertConfig(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse request body
	var req dto.UpsertBudgetConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidBudgetAmount), err)
		return
	}

	// Execute use case
	output, err := c.upsertConfigUseCase.Execute(ctx.Request.Context(), req.ToInput(userID))
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// FinanceSummary handles GET /dashboard/finance?month=YYYY-MM requests.
func (c *BudgetController) FinanceSummary(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetFinanceSummaryInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	internalError(ctx)
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetConfigNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetPercentage,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidCreditCardLimits,
		domainerror.ErrCodeInvalidMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
