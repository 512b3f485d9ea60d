// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/life-manager/backend/config"
	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/usecase/auth"
	"github.com/life-manager/backend/internal/application/usecase/budget"
	"github.com/life-manager/backend/internal/application/usecase/category"
	"github.com/life-manager/backend/internal/application/usecase/dashboard"
	"github.com/life-manager/backend/internal/application/usecase/focus"
	"github.com/life-manager/backend/internal/application/usecase/portfolio"
	"github.com/life-manager/backend/internal/application/usecase/transaction"
	"github.com/life-manager/backend/internal/infra/db"
	"github.com/life-manager/backend/internal/infra/server/router"
	"github.com/life-manager/backend/internal/integration/adapters"
	"github.com/life-manager/backend/internal/integration/cache"
	"github.com/life-manager/backend/internal/integration/email"
	"github.com/life-manager/backend/internal/integration/email/templates"
	"github.com/life-manager/backend/internal/integration/entrypoint/controller"
	"github.com/life-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/life-manager/backend/internal/integration/persistence"
)

// Options carries the collaborators that differ between the server and tests.
// Zero values pick the production behavior.
type Options struct {
	// Cache is the query cache. Nil disables caching.
	Cache adapter.QueryCache
	// CacheHealth checks the cache backend for /health. Nil reports it as disabled.
	CacheHealth func() bool
	// EmailSender overrides the Resend client used for alerts.
	EmailSender adapter.EmailSender
	// Now overrides the clock of the finance dashboard.
	Now func() time.Time
}

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	TokenSweeper *adapters.TokenSweeper
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, gormDB *gorm.DB, opts Options) (*Injector, error) {
	queryCache := opts.Cache
	if queryCache == nil {
		queryCache = cache.NewNoopQueryCache()
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	tokenRepo := persistence.NewTokenRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	budgetConfigRepo := persistence.NewBudgetConfigRepository(gormDB)
	taskRepo := persistence.NewFocusTaskRepository(gormDB)
	bucketRepo := persistence.NewInvestmentBucketRepository(gormDB)
	assetRepo := persistence.NewAssetRepository(gormDB)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Security.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:            cfg.JWT.AccessTokenExpiry,
		Refresh:           cfg.JWT.RefreshTokenExpiry,
		RememberMeAccess:  cfg.JWT.RememberMeAccessTokenExpiry,
		RememberMeRefresh: cfg.JWT.RememberMeRefreshTokenExpiry,
	}, tokenRepo)

	notifier, err := newAlertNotifier(cfg, userRepo, opts.EmailSender)
	if err != nil {
		return nil, err
	}

	// Create auth use cases
	signUpUseCase := auth.NewSignUpUseCase(userRepo, passwordService, tokenService)
	signInUseCase := auth.NewSignInUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshSessionUseCase(tokenService)
	signOutUseCase := auth.NewSignOutUseCase(tokenService, queryCache)
	getSessionUseCase := auth.NewGetSessionUseCase(userRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, queryCache)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, queryCache)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, queryCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, queryCache)
	seedCategoriesUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo, queryCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, queryCache)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, budgetConfigRepo, notifier, queryCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, queryCache)

	// Create budget and dashboard use cases
	getBudgetConfigUseCase := budget.NewGetBudgetConfigUseCase(budgetConfigRepo, queryCache)
	upsertBudgetConfigUseCase := budget.NewUpsertBudgetConfigUseCase(budgetConfigRepo, queryCache)
	financeSummaryUseCase := dashboard.NewGetFinanceSummaryUseCase(categoryRepo, transactionRepo, budgetConfigRepo, queryCache, opts.Now)

	// Create focus use cases
	focusController := controller.NewFocusController(
		focus.NewListTasksUseCase(taskRepo, queryCache),
		focus.NewCreateTaskUseCase(taskRepo, queryCache),
		focus.NewScheduleTaskUseCase(taskRepo, queryCache),
		focus.NewToggleTaskUseCase(taskRepo, queryCache),
		focus.NewUnscheduleTaskUseCase(taskRepo, queryCache),
		focus.NewDeleteTaskUseCase(taskRepo, queryCache),
	)

	// Create portfolio use cases
	portfolioController := controller.NewPortfolioController(controller.PortfolioUseCases{
		ListBuckets:          portfolio.NewListBucketsUseCase(bucketRepo, queryCache),
		CreateBucket:         portfolio.NewCreateBucketUseCase(bucketRepo, queryCache),
		UpdateBucket:         portfolio.NewUpdateBucketUseCase(bucketRepo, queryCache),
		DeleteBucket:         portfolio.NewDeleteBucketUseCase(bucketRepo, queryCache),
		ListAssets:           portfolio.NewListAssetsUseCase(assetRepo, queryCache),
		CreateAsset:          portfolio.NewCreateAssetUseCase(assetRepo, bucketRepo, queryCache),
		UpdateAsset:          portfolio.NewUpdateAssetUseCase(assetRepo, bucketRepo, queryCache),
		UpdateAssetPrice:     portfolio.NewUpdateAssetPriceUseCase(assetRepo, queryCache),
		DeleteAsset:          portfolio.NewDeleteAssetUseCase(assetRepo, queryCache),
		GetOverview:          portfolio.NewGetOverviewUseCase(bucketRepo, assetRepo, queryCache),
		SimulateContribution: portfolio.NewSimulateContributionUseCase(bucketRepo, assetRepo, queryCache),
	})

	// Create controllers
	healthController := controller.NewHealthController(db.Wrap(gormDB).HealthCheck, opts.CacheHealth)

	controllers := router.Controllers{
		Health: healthController,
		Auth: controller.NewAuthController(
			signUpUseCase,
			signInUseCase,
			refreshUseCase,
			signOutUseCase,
			getSessionUseCase,
		),
		Category: controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
			seedCategoriesUseCase,
		),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			deleteTransactionUseCase,
		),
		Budget: controller.NewBudgetController(
			getBudgetConfigUseCase,
			upsertBudgetConfigUseCase,
			financeSummaryUseCase,
		),
		Focus:     focusController,
		Portfolio: portfolioController,
	}

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginMaxAttempts, cfg.RateLimit.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	return &Injector{
		Config:       cfg,
		DB:           gormDB,
		Router:       router.NewRouter(controllers, loginRateLimiter, authMiddleware),
		TokenSweeper: adapters.NewTokenSweeper(tokenRepo, cfg.JWT.SweepInterval),
	}, nil
}

// newAlertNotifier picks the credit card alert channel: the given sender,
// Resend when configured, or a no-op.
func newAlertNotifier(cfg *config.Config, userRepo adapter.UserRepository, sender adapter.EmailSender) (adapter.BudgetAlertNotifier, error) {
	if sender == nil {
		if !cfg.Email.AlertsEnabled() {
			slog.Info("Budget alert e-mails disabled")
			return email.NoopNotifier{}, nil
		}
		resendClient, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.ResendBaseURL, cfg.Email.FromName, cfg.Email.FromEmail)
		if err != nil {
			return nil, err
		}
		sender = resendClient
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	return email.NewAlertNotifier(userRepo, sender, renderer, cfg.Email.AppBaseURL), nil
}
