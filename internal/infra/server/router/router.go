// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgeteur/backend/internal/integration/entrypoint/controller"
	"github.com/budgeteur/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	preferenceController  *controller.PreferenceController
	preferenceRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	preferenceController *controller.PreferenceController,
	preferenceRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		preferenceController:  preferenceController,
		preferenceRateLimiter: preferenceRateLimiter,
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
	r.engine.Use(gin.Recovery(), middleware.RequestID())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("/view", r.transactionController.GetView)
				transactions.GET("/range-options", r.transactionController.GetRangeOptions)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("", r.dashboardController.GetDashboard)
				dashboard.GET("/data-range", r.dashboardController.GetDataRange)
			}
		}

		if r.preferenceController != nil {
			v1.GET("/tags", r.preferenceController.ListTags)

			preferences := v1.Group("/preferences")
			{
				preferences.GET("/excluded-tags", r.preferenceController.GetExcludedTags)
				if r.preferenceRateLimiter != nil {
					preferences.PUT("/excluded-tags", r.preferenceRateLimiter.Middleware(), r.preferenceController.UpdateExcludedTags)
				} else {
					preferences.PUT("/excluded-tags", r.preferenceController.UpdateExcludedTags)
				}
			}
		}
	}
}

// Engine returns the configured Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
