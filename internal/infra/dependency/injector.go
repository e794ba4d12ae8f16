// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/currency"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/application/usecase/settings"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/email"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}

	var insightService adapter.InsightService
	if cfg.AI.GeminiAPIKey != "" {
		insightService = adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	}

	// Currency conversion stack
	rateCache := adapters.NewRedisRateCache(redisClient, cfg.ExchangeRate.CacheTTL, cfg.ExchangeRate.FallbackTTL)
	rateClient := adapters.NewExchangeRateClient(cfg.ExchangeRate.APIURL)
	rateService := currency.NewRateService(rateCache, rateClient, cfg.ExchangeRate.BaseCurrency, logger)
	converter := currency.NewConverter(rateService)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, settingsRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	searchExpensesUseCase := expense.NewSearchExpensesUseCase(expenseRepo)
	listRecurringUseCase := expense.NewListRecurringUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create report use cases
	monthlyReportUseCase := report.NewMonthlyReportUseCase(expenseRepo, converter, cfg.ExchangeRate.BaseCurrency)
	annualReportUseCase := report.NewAnnualReportUseCase(expenseRepo, converter, cfg.ExchangeRate.BaseCurrency)
	customReportUseCase := report.NewCustomReportUseCase(expenseRepo, converter, cfg.ExchangeRate.BaseCurrency)
	generateInsightUseCase := report.NewGenerateInsightUseCase(insightService)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
		searchExpensesUseCase,
		listRecurringUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	reportController := controller.NewReportController(
		monthlyReportUseCase,
		annualReportUseCase,
		customReportUseCase,
		generateInsightUseCase,
		getSettingsUseCase,
	)

	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, authController, categoryController, expenseController, reportController, settingsController, loginRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
