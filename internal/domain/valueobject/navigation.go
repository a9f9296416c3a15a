package valueobject

import (
	"fmt"
	"time"

	domainerror "github.com/budgeteur/backend/internal/domain/error"
)

const (
	minAnchorYear = 1
	maxAnchorYear = 9999
)

// NavigationState is the canonical (range, interval, anchor) triple of a transactions view.
type NavigationState struct {
	Range     RangePreset
	Interval  IntervalPreset
	Anchor    time.Time
	DateRange DateRange
	// Corrected is set when the requested range preset could not hold the interval
	// and was replaced by the smallest one that can.
	Corrected bool
}

// RangeOption is a selectable range preset for a given interval.
type RangeOption struct {
	Preset   RangePreset
	Disabled bool
}

// RangeSelectable reports whether range r is compatible with interval i.
func RangeSelectable(r RangePreset, i IntervalPreset) bool {
	return CanContain(r, i)
}

// RangeOptions lists every range preset, disabling those smaller than interval i.
func RangeOptions(i IntervalPreset) []RangeOption {
	presets := RangePresets()
	options := make([]RangeOption, 0, len(presets))
	for _, p := range presets {
		options = append(options, RangeOption{Preset: p, Disabled: !RangeSelectable(p, i)})
	}
	return options
}

// Resolve validates a navigation request and returns its canonical state.
// Resolve(s.Range, s.Interval, s.Anchor) returns s unchanged apart from Corrected.
func Resolve(r RangePreset, i IntervalPreset, anchor time.Time) (NavigationState, error) {
	if !r.IsValid() {
		return NavigationState{}, domainerror.NewNavigationError(
			domainerror.ErrCodeInvalidRangePreset,
			fmt.Sprintf("unknown range preset %q", r),
			domainerror.ErrInvalidRangePreset,
		)
	}
	if !i.IsValid() {
		return NavigationState{}, domainerror.NewNavigationError(
			domainerror.ErrCodeInvalidIntervalPreset,
			fmt.Sprintf("unknown interval preset %q", i),
			domainerror.ErrInvalidIntervalPreset,
		)
	}
	if anchor.IsZero() {
		return NavigationState{}, domainerror.NewNavigationError(
			domainerror.ErrCodeInvalidAnchor,
			"anchor date is required",
			domainerror.ErrInvalidAnchor,
		)
	}
	anchor = Date(anchor)
	if anchor.Year() < minAnchorYear || anchor.Year() > maxAnchorYear {
		return NavigationState{}, domainerror.NewNavigationError(
			domainerror.ErrCodeAnchorOutOfRange,
			fmt.Sprintf("anchor year %d outside %d-%d", anchor.Year(), minAnchorYear, maxAnchorYear),
			domainerror.ErrAnchorOutOfRange,
		)
	}

	state := NavigationState{Range: r, Interval: i, Anchor: anchor}
	if !RangeSelectable(r, i) {
		state.Range = SmallestRangeFor(i)
		state.Corrected = true
	}
	state.DateRange = RangeFor(state.Range, anchor)
	return state, nil
}
