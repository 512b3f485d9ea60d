// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/life-manager/backend/internal/integration/entrypoint/controller"
	"github.com/life-manager/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups every HTTP controller served by the router.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	Category    *controller.CategoryController
	Transaction *controller.TransactionController
	Budget      *controller.BudgetController
	Focus       *controller.FocusController
	Portfolio   *controller.PortfolioController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
	r.engine.NoRoute(r.controllers.Health.NotFound)
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	if c.Auth != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.Auth.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
			auth.POST("/refresh", c.Auth.Refresh)
			auth.POST("/logout", r.authMiddleware.Authenticate(), c.Auth.Logout)
			auth.GET("/session", r.authMiddleware.Authenticate(), c.Auth.Session)
		}
	}

	// Everything below requires authentication.
	private := v1.Group("")
	private.Use(r.authMiddleware.Authenticate())

	if c.Category != nil {
		categories := private.Group("/categories")
		{
			categories.GET("", c.Category.List)
			categories.POST("", c.Category.Create)
			categories.POST("/seed", c.Category.Seed)
			categories.PATCH("/:id", c.Category.Update)
			categories.DELETE("/:id", c.Category.Delete)
		}
	}

	if c.Transaction != nil {
		transactions := private.Group("/transactions")
		{
			transactions.GET("", c.Transaction.List)
			transactions.POST("", c.Transaction.Create)
			transactions.DELETE("/:id", c.Transaction.Delete)
		}
	}

	if c.Budget != nil {
		private.GET("/budget-config", c.Budget.GetConfig)
		private.PUT("/budget-config", c.Budget.UpsertConfig)
		private.GET("/dashboard/finance", c.Budget.FinanceSummary)
	}

	if c.Focus != nil {
		tasks := private.Group("/focus/tasks")
		{
			tasks.GET("", c.Focus.List)
			tasks.POST("", c.Focus.Create)
			tasks.POST("/:id/schedule", c.Focus.Schedule)
			tasks.POST("/:id/toggle", c.Focus.Toggle)
			tasks.POST("/:id/unschedule", c.Focus.Unschedule)
			tasks.DELETE("/:id", c.Focus.Delete)
		}
	}

	if c.Portfolio != nil {
		investments := private.Group("/investments")
		{
			investments.GET("/buckets", c.Portfolio.ListBuckets)
			investments.POST("/buckets", c.Portfolio.CreateBucket)
			investments.PATCH("/buckets/:id", c.Portfolio.UpdateBucket)
			investments.DELETE("/buckets/:id", c.Portfolio.DeleteBucket)

			investments.GET("/assets", c.Portfolio.ListAssets)
			investments.POST("/assets", c.Portfolio.CreateAsset)
			investments.PATCH("/assets/:id", c.Portfolio.UpdateAsset)
			investments.PUT("/assets/:id/price", c.Portfolio.UpdateAssetPrice)
			investments.DELETE("/assets/:id", c.Portfolio.DeleteAsset)

			investments.GET("/portfolio", c.Portfolio.Overview)
			investments.POST("/contributions/simulate", c.Portfolio.SimulateContribution)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
