// Package router sets up the HTTP routing for the ledger service.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/client/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	platformController    *controller.PlatformController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	analyticsController   *controller.AnalyticsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	platformController *controller.PlatformController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	analyticsController *controller.AnalyticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		platformController:    platformController,
		accountController:     accountController,
		transactionController: transactionController,
		goalController:        goalController,
		analyticsController:   analyticsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the API routes. Everything except health,
// registration, login and the platform list requires a bearer token.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		api.GET("/health", r.healthController.Check)

		// Auth routes
		api.POST("/register", r.authController.Register)
		api.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)

		// Public platform list
		api.GET("/platforms", r.platformController.List)

		authenticated := api.Group("")
		authenticated.Use(r.authMiddleware.Authenticate())
		{
			authenticated.GET("/me", r.userController.Me)

			authenticated.POST("/platforms", r.platformController.Create)

			authenticated.GET("/accounts", r.accountController.List)
			authenticated.POST("/accounts", r.accountController.Create)
			authenticated.PUT("/accounts/:id/balance", r.accountController.UpdateBalance)
			authenticated.DELETE("/accounts/:id", r.accountController.Delete)

			authenticated.GET("/transactions", r.transactionController.List)
			authenticated.POST("/transactions", r.transactionController.Create)

			authenticated.GET("/goals", r.goalController.List)
			authenticated.POST("/goals", r.goalController.Create)
			authenticated.PUT("/goals/:id", r.goalController.Update)
			authenticated.PUT("/goals/:id/progress", r.goalController.UpdateProgress)
			authenticated.DELETE("/goals/:id", r.goalController.Delete)

			authenticated.GET("/analytics/overview", r.analyticsController.Overview)
			authenticated.GET("/analytics/monthly/:year/:month", r.analyticsController.Monthly)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
