// Package transaction contains the transactions view use case.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/budgeteur/backend/internal/application/adapter"
	"github.com/budgeteur/backend/internal/application/analytics"
	"github.com/budgeteur/backend/internal/domain/entity"
	domainerror "github.com/budgeteur/backend/internal/domain/error"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// EmptyState explains why a view or summary has nothing to show.
type EmptyState string

const (
	EmptyStateNone                 EmptyState = ""
	EmptyStateNoTransactions       EmptyState = "no_transactions"
	EmptyStateNoRowsAfterExclusion EmptyState = "no_rows_after_exclusion"
)

// Message returns the text shown in place of the table or summary.
func (s EmptyState) Message() string {
	switch s {
	case EmptyStateNoTransactions:
		return "No transactions in this range."
	case EmptyStateNoRowsAfterExclusion:
		return "No transactions in this summary after exclusions."
	default:
		return ""
	}
}

// GetTransactionsViewInput represents the input for the grouped transactions view.
type GetTransactionsViewInput struct {
	Range       valueobject.RangePreset
	Interval    valueobject.IntervalPreset
	Anchor      *time.Time // Defaults to today
	WithSummary bool       // Adds a category summary per interval
}

// IntervalView is one grouped interval, optionally with its category summary.
type IntervalView struct {
	Interval     analytics.Interval
	Summary      *analytics.CategorySummary
	SummaryEmpty EmptyState
}

// GetTransactionsViewOutput represents the grouped transactions of one range.
type GetTransactionsViewOutput struct {
	Navigation       valueobject.NavigationState
	RangeNavigation  RangeNavigation
	RangeOptions     []valueobject.RangeOption
	Intervals        []IntervalView
	Summary          analytics.CategorySummary
	Tags             []*entity.TagWithExclusion
	ExcludedTagIDs   []int64
	TransactionCount int
	EmptyState       EmptyState
}

// GetTransactionsViewUseCase resolves a navigation request and groups the matching transactions.
type GetTransactionsViewUseCase struct {
	transactionRepo adapter.TransactionRepository
	tagRepo         adapter.TagRepository
	preferenceRepo  adapter.PreferenceRepository
	clock           adapter.Clock
	location        *time.Location
}

// NewGetTransactionsViewUseCase creates a new GetTransactionsViewUseCase instance.
// The default anchor is today in location.
func NewGetTransactionsViewUseCase(
	transactionRepo adapter.TransactionRepository,
	tagRepo adapter.TagRepository,
	preferenceRepo adapter.PreferenceRepository,
	clock adapter.Clock,
	location *time.Location,
) *GetTransactionsViewUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetTransactionsViewUseCase{
		transactionRepo: transactionRepo,
		tagRepo:         tagRepo,
		preferenceRepo:  preferenceRepo,
		clock:           clock,
		location:        location,
	}
}

// Execute builds the grouped view for the requested range.
func (uc *GetTransactionsViewUseCase) Execute(
	ctx context.Context,
	input GetTransactionsViewInput,
) (*GetTransactionsViewOutput, error) {
	now := uc.clock.Now().In(uc.location)
	anchor := valueobject.NewDate(now.Year(), now.Month(), now.Day())
	if input.Anchor != nil {
		anchor = *input.Anchor
	}

	state, err := valueobject.Resolve(input.Range, input.Interval, anchor)
	if err != nil {
		return nil, err
	}

	var (
		txs        []*entity.Transaction
		bounds     *entity.TransactionDateBounds
		tags       []*entity.Tag
		excludedID []int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = uc.transactionRepo.FindInRange(gctx, state.DateRange)
		return err
	})
	g.Go(func() error {
		var err error
		bounds, err = uc.transactionRepo.GetDateBounds(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = uc.tagRepo.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		excludedID, err = uc.preferenceRepo.GetExcludedTagIDs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to load transactions view",
			"range", state.Range,
			"date_range", state.DateRange.String(),
			"error", err,
		)
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionInternalError,
			"failed to load transactions",
			err,
		)
	}

	exclusions := valueobject.NewExclusionSet(excludedID...)
	intervals := analytics.GroupTransactions(txs, state.DateRange, state.Interval, exclusions)

	output := &GetTransactionsViewOutput{
		Navigation:      state,
		RangeNavigation: BuildRangeNavigation(state.Range, state.DateRange, *bounds),
		RangeOptions:    valueobject.RangeOptions(state.Interval),
		Intervals:       make([]IntervalView, 0, len(intervals)),
		Tags:            entity.WithExclusionStatus(tags, exclusions.Contains),
		ExcludedTagIDs:  exclusions.IDs(),
	}

	inRange := make([]*entity.Transaction, 0, len(txs))
	for _, interval := range intervals {
		view := IntervalView{Interval: interval}
		if input.WithSummary {
			summary := analytics.SummarizeByTag(interval.Transactions(), exclusions)
			view.Summary = &summary
			if summary.IsEmpty() {
				view.SummaryEmpty = EmptyStateNoRowsAfterExclusion
			}
		}
		output.Intervals = append(output.Intervals, view)
		inRange = append(inRange, interval.Transactions()...)
	}

	output.TransactionCount = len(inRange)
	output.Summary = analytics.SummarizeByTag(inRange, exclusions)

	switch {
	case output.TransactionCount == 0:
		output.EmptyState = EmptyStateNoTransactions
	case output.Summary.IsEmpty():
		output.EmptyState = EmptyStateNoRowsAfterExclusion
	}

	return output, nil
}
