// Package dependency provides dependency injection for the ledger service and
// the finance client.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/infra/server/router"
	"github.com/finance-tracker/client/internal/integration/adapters"
	"github.com/finance-tracker/client/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/client/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/client/internal/integration/persistence"
)

// Injector holds all ledger service dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Router           *router.Router
	LoginRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new ledger service injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	platformRepo := persistence.NewPlatformRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Server.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	clock := adapter.SystemClock{}

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	authController := controller.NewAuthController(userRepo, passwordService, tokenService)
	userController := controller.NewUserController(userRepo)
	platformController := controller.NewPlatformController(platformRepo)
	accountController := controller.NewAccountController(accountRepo, platformRepo)
	transactionController := controller.NewTransactionController(transactionRepo)
	goalController := controller.NewGoalController(goalRepo)
	analyticsController := controller.NewAnalyticsController(accountRepo, transactionRepo, goalRepo, clock)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.Server.LoginRateLimit, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		platformController,
		accountController,
		transactionController,
		goalController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		LoginRateLimiter: loginRateLimiter,
	}
}
