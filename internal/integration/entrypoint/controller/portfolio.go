// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/usecase/portfolio"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/entrypoint/dto"
)

// PortfolioUseCases groups the investment use cases served by PortfolioController.
type PortfolioUseCases struct {
	ListBuckets          *portfolio.ListBucketsUseCase
	CreateBucket         *portfolio.CreateBucketUseCase
	UpdateBucket         *portfolio.UpdateBucketUseCase
	DeleteBucket         *portfolio.DeleteBucketUseCase
	ListAssets           *portfolio.ListAssetsUseCase
	CreateAsset          *portfolio.CreateAssetUseCase
	UpdateAsset          *portfolio.UpdateAssetUseCase
	UpdateAssetPrice     *portfolio.UpdateAssetPriceUseCase
	DeleteAsset          *portfolio.DeleteAssetUseCase
	GetOverview          *portfolio.GetOverviewUseCase
	SimulateContribution *portfolio.SimulateContributionUseCase
}

// PortfolioController handles bucket, asset and contribution endpoints.
type PortfolioController struct {
	uc PortfolioUseCases
}

// NewPortfolioController creates a new portfolio controller instance.
func NewPortfolioController(useCases PortfolioUseCases) *PortfolioController {
	return &PortfolioController{uc: useCases}
}

// ListBuckets handles GET /investments/buckets requests.
func (c *PortfolioController) ListBuckets(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	buckets, err := c.uc.ListBuckets.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BucketListResponse{Buckets: buckets})
}

// CreateBucket handles POST /investments/buckets requests.
func (c *PortfolioController) CreateBucket(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse request body
	var req dto.CreateBucketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingPortfolioFields), err)
		return
	}

	bucket, err := c.uc.CreateBucket.Execute(ctx.Request.Context(), req.ToInput(userID))
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, bucket)
}

// UpdateBucket handles PATCH /investments/buckets/:id requests.
func (c *PortfolioController) UpdateBucket(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	bucketID, ok := parseIDParam(ctx, "Invalid bucket ID format")
	if !ok {
		return
	}

	// Parse request body
	var req dto.UpdateBucketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingPortfolioFields), err)
		return
	}

	bucket, err := c.uc.UpdateBucket.Execute(ctx.Request.Context(), portfolio.UpdateBucketInput{
		UserID:           userID,
		BucketID:         bucketID,
		Name:             req.Name,
		TargetPercentage: req.TargetPercentage,
	})
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bucket)
}

// DeleteBucket handles DELETE /investments/buckets/:id requests.
// The bucket's assets are deleted with it.
func (c *PortfolioController) DeleteBucket(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	bucketID, ok := parseIDParam(ctx, "Invalid bucket ID format")
	if !ok {
		return
	}

	if err := c.uc.DeleteBucket.Execute(ctx.Request.Context(), userID, bucketID); err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListAssets handles GET /investments/assets requests.
func (c *PortfolioController) ListAssets(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	assets, err := c.uc.ListAssets.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AssetListResponse{Assets: assets})
}

// CreateAsset handles POST /investments/assets requests.
func (c *PortfolioController) CreateAsset(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse request body
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingPortfolioFields), err)
		return
	}
	bucketID, err := uuid.Parse(req.BucketID)
	if err != nil {
		badRequest(ctx, "Invalid bucket ID format", string(domainerror.ErrCodeMissingPortfolioFields), nil)
		return
	}

	asset, err := c.uc.CreateAsset.Execute(ctx.Request.Context(), req.ToInput(userID, bucketID))
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, asset)
}

// UpdateAsset handles PATCH /investments/assets/:id requests.
func (c *PortfolioController) UpdateAsset(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	assetID, ok := parseIDParam(ctx, "Invalid asset ID format")
	if !ok {
		return
	}

	// Parse request body
	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingPortfolioFields), err)
		return
	}
	bucketID, err := dto.ParseOptionalUUID(req.BucketID)
	if err != nil {
		badRequest(ctx, "Invalid bucket ID format", string(domainerror.ErrCodeMissingPortfolioFields), nil)
		return
	}

	asset, err := c.uc.UpdateAsset.Execute(ctx.Request.Context(), portfolio.UpdateAssetInput{
		UserID:                   userID,
		AssetID:                  assetID,
		BucketID:                 bucketID,
		Ticker:                   req.Ticker,
		Name:                     req.Name,
		Quantity:                 req.Quantity,
		TargetPercentageInBucket: req.TargetPercentageInBucket,
		IsManual:                 req.IsManual,
		ManualPrice:              req.ManualPrice,
	})
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, asset)
}

// UpdateAssetPrice handles PUT /investments/assets/:id/price requests.
func (c *PortfolioController) UpdateAssetPrice(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	assetID, ok := parseIDParam(ctx, "Invalid asset ID format")
	if !ok {
		return
	}

	// Parse request body
	var req dto.UpdateAssetPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPrice), err)
		return
	}

	asset, err := c.uc.UpdateAssetPrice.Execute(ctx.Request.Context(), portfolio.UpdateAssetPriceInput{
		UserID:  userID,
		AssetID: assetID,
		Price:   *req.Price,
	})
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, asset)
}

// DeleteAsset handles DELETE /investments/assets/:id requests.
func (c *PortfolioController) DeleteAsset(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse ID from URL
	assetID, ok := parseIDParam(ctx, "Invalid asset ID format")
	if !ok {
		return
	}

	if err := c.uc.DeleteAsset.Execute(ctx.Request.Context(), userID, assetID); err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Overview handles GET /investments/portfolio requests.
func (c *PortfolioController) Overview(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	overview, err := c.uc.GetOverview.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// SimulateContribution handles POST /investments/contributions/simulate requests.
func (c *PortfolioController) SimulateContribution(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// Parse request body
	var req dto.SimulateContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidContribution), err)
		return
	}

	output, err := c.uc.SimulateContribution.Execute(ctx.Request.Context(), portfolio.SimulateContributionInput{
		UserID: userID,
		Amount: *req.Amount,
	})
	if err != nil {
		c.handlePortfolioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handlePortfolioError handles portfolio errors and returns appropriate HTTP responses.
func (c *PortfolioController) handlePortfolioError(ctx *gin.Context, err error) {
	var portErr *domainerror.PortfolioError
	if errors.As(err, &portErr) {
		ctx.JSON(c.getStatusCodeForPortfolioError(portErr.Code), dto.ErrorResponse{
			Error: portErr.Message,
			Code:  string(portErr.Code),
		})
		return
	}

	internalError(ctx)
}

// getStatusCodeForPortfolioError maps portfolio error codes to HTTP status codes.
func (c *PortfolioController) getStatusCodeForPortfolioError(code domainerror.PortfolioErrorCode) int {
	switch code {
	case domainerror.ErrCodeBucketNotFound,
		domainerror.ErrCodeAssetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingPortfolioFields,
		domainerror.ErrCodeInvalidPercentage,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidPrice,
		domainerror.ErrCodeInvalidContribution:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
