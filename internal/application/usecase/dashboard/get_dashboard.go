package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgeteur/backend/internal/application/adapter"
	"github.com/budgeteur/backend/internal/application/analytics"
	"github.com/budgeteur/backend/internal/domain/entity"
	domainerror "github.com/budgeteur/backend/internal/domain/error"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

const cacheKeyPrefix = "dashboard:"

// GetDashboardInput represents the input for the dashboard.
type GetDashboardInput struct {
	TargetMonth *time.Time // Defaults to the last complete month
}

// GetDashboardOutput is the dashboard payload. It is cached as JSON.
type GetDashboardOutput struct {
	TargetMonth      time.Time                    `json:"target_month"`
	Window           valueobject.DateRange        `json:"window"`
	Months           []time.Time                  `json:"months"`
	TagStatistics    []analytics.TagStat          `json:"tag_statistics"`
	MonthlyBreakdown []analytics.MonthlyBreakdown `json:"monthly_breakdown"`
	Summary          analytics.SummaryStatistics  `json:"summary"`
	ExpenseSeries    []analytics.TagSeries        `json:"expense_series"`
	ExcludedTagIDs   []int64                      `json:"excluded_tag_ids"`
	HasData          bool                         `json:"has_data"`
}

// GetDashboardUseCase computes tag trend cards and monthly charts over the last twelve months.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
	preferenceRepo  adapter.PreferenceRepository
	cache           adapter.DashboardCache
	clock           adapter.Clock
	location        *time.Location
	cacheTTL        time.Duration
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
// "Today" is taken from clock in location.
func NewGetDashboardUseCase(
	transactionRepo adapter.TransactionRepository,
	preferenceRepo adapter.PreferenceRepository,
	cache adapter.DashboardCache,
	clock adapter.Clock,
	location *time.Location,
	cacheTTL time.Duration,
) *GetDashboardUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
		preferenceRepo:  preferenceRepo,
		cache:           cache,
		clock:           clock,
		location:        location,
		cacheTTL:        cacheTTL,
	}
}

// Execute builds the dashboard for the requested target month.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	today := uc.today()
	target, err := uc.resolveTargetMonth(input, today)
	if err != nil {
		return nil, err
	}

	excludedIDs, err := uc.preferenceRepo.GetExcludedTagIDs(ctx)
	if err != nil {
		return nil, uc.internalError(ctx, "failed to load excluded tags", err)
	}
	exclusions := valueobject.NewExclusionSet(excludedIDs...)

	key := fmt.Sprintf("%s%s:%s", cacheKeyPrefix, target.Format(MonthLayout), exclusions.Key())
	var cached GetDashboardOutput
	if hit, err := uc.cache.Get(ctx, key, &cached); err != nil {
		slog.WarnContext(ctx, "dashboard cache read failed", "key", key, "error", err)
	} else if hit {
		return &cached, nil
	}

	window := WindowEndingAt(target, HistoryMonths)

	// Months after the target, up to the current one, still count as tag history.
	loaded := window
	if current := valueobject.RangeFor(valueobject.RangeMonth, today); current.End.After(window.End) {
		loaded = valueobject.NewDateRange(window.Start, current.End)
	}

	txs, err := uc.transactionRepo.FindInRange(ctx, loaded)
	if err != nil {
		return nil, uc.internalError(ctx, "failed to load transactions", err)
	}

	output := uc.build(txs, target, window, exclusions)

	if err := uc.cache.Set(ctx, key, output, uc.cacheTTL); err != nil {
		slog.WarnContext(ctx, "dashboard cache write failed", "key", key, "error", err)
	}
	return output, nil
}

func (uc *GetDashboardUseCase) build(
	txs []*entity.Transaction,
	target time.Time,
	window valueobject.DateRange,
	exclusions valueobject.ExclusionSet,
) *GetDashboardOutput {
	included := analytics.FilterExcluded(txs, exclusions)
	inWindow := analytics.FilterInRange(included, window)
	months := analytics.MonthSeries(window)
	breakdown := analytics.AggregateByMonth(inWindow)

	return &GetDashboardOutput{
		TargetMonth:      target,
		Window:           window,
		Months:           months,
		TagStatistics:    analytics.CalculateTagStatistics(included, target),
		MonthlyBreakdown: breakdown,
		Summary:          analytics.CalculateSummaryStatistics(breakdown),
		ExpenseSeries:    analytics.ExpenseSeriesByTag(inWindow, months),
		ExcludedTagIDs:   exclusions.IDs(),
		HasData:          len(txs) > 0,
	}
}

func (uc *GetDashboardUseCase) today() time.Time {
	now := uc.clock.Now().In(uc.location)
	return valueobject.NewDate(now.Year(), now.Month(), now.Day())
}

func (uc *GetDashboardUseCase) resolveTargetMonth(input GetDashboardInput, today time.Time) (time.Time, error) {
	lastComplete := LastCompleteMonth(today)

	if input.TargetMonth == nil {
		return lastComplete, nil
	}

	target := valueobject.MonthStart(*input.TargetMonth)
	if target.After(lastComplete) {
		return time.Time{}, domainerror.NewDashboardError(
			domainerror.ErrCodeTargetMonthNotComplete,
			fmt.Sprintf("month %s has not ended yet", target.Format(MonthLayout)),
			domainerror.ErrTargetMonthNotComplete,
		)
	}
	return target, nil
}

func (uc *GetDashboardUseCase) internalError(ctx context.Context, message string, err error) error {
	slog.ErrorContext(ctx, message, "error", err)
	return domainerror.NewDashboardError(domainerror.ErrCodeDashboardInternalError, message, err)
}
