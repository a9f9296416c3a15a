// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgeteur/backend/config"
	"github.com/budgeteur/backend/internal/application/adapter"
	"github.com/budgeteur/backend/internal/application/usecase/dashboard"
	"github.com/budgeteur/backend/internal/application/usecase/preference"
	"github.com/budgeteur/backend/internal/application/usecase/transaction"
	"github.com/budgeteur/backend/internal/domain/valueobject"
	"github.com/budgeteur/backend/internal/infra/server/router"
	"github.com/budgeteur/backend/internal/integration/adapters"
	"github.com/budgeteur/backend/internal/integration/cache"
	"github.com/budgeteur/backend/internal/integration/entrypoint/controller"
	"github.com/budgeteur/backend/internal/integration/entrypoint/middleware"
	"github.com/budgeteur/backend/internal/integration/persistence"
)

// UseCases exposes the application use cases to entry points other than HTTP.
type UseCases struct {
	TransactionsView   *transaction.GetTransactionsViewUseCase
	Dashboard          *dashboard.GetDashboardUseCase
	DataRange          *dashboard.GetDataRangeUseCase
	GetExcludedTags    *preference.GetExcludedTagsUseCase
	UpdateExcludedTags *preference.UpdateExcludedTagsUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *router.Router
	UseCases UseCases
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	clock adapter.Clock
}

// WithClock replaces the system clock.
func WithClock(clock adapter.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables the dashboard cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) *Injector {
	o := options{clock: adapters.NewSystemClock()}
	for _, opt := range opts {
		opt(&o)
	}

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	tagRepo := persistence.NewTagRepository(db)
	preferenceRepo := persistence.NewPreferenceRepository(db)

	// Create adapters/services
	dashboardCache := cache.NewNoopDashboardCache()
	if redisClient != nil {
		dashboardCache = cache.NewRedisDashboardCache(redisClient)
	}

	location, err := cfg.Location()
	if err != nil {
		location = time.UTC
	}

	// Create use cases
	useCases := UseCases{
		TransactionsView:   transaction.NewGetTransactionsViewUseCase(transactionRepo, tagRepo, preferenceRepo, o.clock, location),
		Dashboard:          dashboard.NewGetDashboardUseCase(transactionRepo, preferenceRepo, dashboardCache, o.clock, location, cfg.Redis.CacheTTL),
		DataRange:          dashboard.NewGetDataRangeUseCase(transactionRepo),
		GetExcludedTags:    preference.NewGetExcludedTagsUseCase(tagRepo, preferenceRepo),
		UpdateExcludedTags: preference.NewUpdateExcludedTagsUseCase(tagRepo, preferenceRepo, dashboardCache),
	}

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker(redisClient))

	transactionController := controller.NewTransactionController(
		useCases.TransactionsView,
		valueobject.RangePreset(cfg.Transactions.DefaultRange),
		valueobject.IntervalPreset(cfg.Transactions.DefaultInterval),
	)

	dashboardController := controller.NewDashboardController(
		useCases.Dashboard,
		useCases.DataRange,
	)

	preferenceController := controller.NewPreferenceController(
		useCases.GetExcludedTags,
		useCases.UpdateExcludedTags,
	)

	// Create middleware
	// Preference writes are unthrottled in E2E/test environments to prevent flaky tests
	rateLimitEnabled := cfg.Server.Environment != "e2e" && cfg.Server.Environment != "test"
	preferenceRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.Requests, cfg.RateLimit.Window, rateLimitEnabled)

	// Create router
	r := router.NewRouter(healthController, transactionController, dashboardController, preferenceController, preferenceRateLimiter)

	return &Injector{
		Config:   cfg,
		DB:       db,
		Router:   r,
		UseCases: useCases,
	}
}

func cacheHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
