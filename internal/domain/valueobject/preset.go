// Package valueobject contains domain value objects for the budget tracker.
package valueobject

import (
	"fmt"
	"strings"

	domainerror "github.com/budgeteur/backend/internal/domain/error"
)

// RangePreset is the outer window a transactions view is scoped to.
type RangePreset string

// IntervalPreset is the sub-period a range is grouped into.
type IntervalPreset string

const (
	RangeWeek      RangePreset = "week"
	RangeFortnight RangePreset = "fortnight"
	RangeMonth     RangePreset = "month"
	RangeQuarter   RangePreset = "quarter"
	RangeHalfYear  RangePreset = "half-year"
	RangeYear      RangePreset = "year"
)

const (
	IntervalWeek      IntervalPreset = "week"
	IntervalFortnight IntervalPreset = "fortnight"
	IntervalMonth     IntervalPreset = "month"
	IntervalQuarter   IntervalPreset = "quarter"
	IntervalHalfYear  IntervalPreset = "half-year"
	IntervalYear      IntervalPreset = "year"
)

// DefaultRangePreset and DefaultIntervalPreset apply when a request names none.
const (
	DefaultRangePreset    = RangeMonth
	DefaultIntervalPreset = IntervalWeek
)

// calendarUnit is the shared domain of both preset kinds, ordered by size.
type calendarUnit int

const (
	unitWeek calendarUnit = iota + 1
	unitFortnight
	unitMonth
	unitQuarter
	unitHalfYear
	unitYear
)

var unitsByName = map[string]calendarUnit{
	"week":      unitWeek,
	"fortnight": unitFortnight,
	"month":     unitMonth,
	"quarter":   unitQuarter,
	"half-year": unitHalfYear,
	"year":      unitYear,
}

var unitLabels = map[calendarUnit]string{
	unitWeek:      "Week",
	unitFortnight: "Fortnight",
	unitMonth:     "Month",
	unitQuarter:   "Quarter",
	unitHalfYear:  "Half-year",
	unitYear:      "Year",
}

// RangePresets returns every range preset from smallest to largest.
func RangePresets() []RangePreset {
	return []RangePreset{RangeWeek, RangeFortnight, RangeMonth, RangeQuarter, RangeHalfYear, RangeYear}
}

// IntervalPresets returns every interval preset from smallest to largest.
func IntervalPresets() []IntervalPreset {
	return []IntervalPreset{IntervalWeek, IntervalFortnight, IntervalMonth, IntervalQuarter, IntervalHalfYear, IntervalYear}
}

// ParseRangePreset parses a query value such as "half-year".
// Empty input yields DefaultRangePreset.
func ParseRangePreset(s string) (RangePreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRangePreset, nil
	}
	if _, ok := unitsByName[s]; !ok {
		return "", domainerror.NewNavigationError(
			domainerror.ErrCodeInvalidRangePreset,
			fmt.Sprintf("unknown range preset %q", s),
			domainerror.ErrInvalidRangePreset,
		)
	}
	return RangePreset(s), nil
}

// ParseIntervalPreset parses a query value such as "fortnight".
// Empty input yields DefaultIntervalPreset.
func ParseIntervalPreset(s string) (IntervalPreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultIntervalPreset, nil
	}
	if _, ok := unitsByName[s]; !ok {
		return "", domainerror.NewNavigationError(
			domainerror.ErrCodeInvalidIntervalPreset,
			fmt.Sprintf("unknown interval preset %q", s),
			domainerror.ErrInvalidIntervalPreset,
		)
	}
	return IntervalPreset(s), nil
}

func (p RangePreset) unit() calendarUnit    { return unitsByName[string(p)] }
func (p IntervalPreset) unit() calendarUnit { return unitsByName[string(p)] }

// IsValid reports whether p is one of the six known presets.
func (p RangePreset) IsValid() bool { return p.unit() != 0 }

// IsValid reports whether p is one of the six known presets.
func (p IntervalPreset) IsValid() bool { return p.unit() != 0 }

// Label returns the display name, e.g. "Half-year".
func (p RangePreset) Label() string { return unitLabels[p.unit()] }

// Label returns the display name, e.g. "Half-year".
func (p IntervalPreset) Label() string { return unitLabels[p.unit()] }

func (p RangePreset) String() string    { return string(p) }
func (p IntervalPreset) String() string { return string(p) }

// CanContain reports whether a range of preset r may be split into intervals of preset i.
func CanContain(r RangePreset, i IntervalPreset) bool {
	return r.IsValid() && i.IsValid() && r.unit() >= i.unit()
}

// SmallestRangeFor returns the smallest range preset able to hold interval i.
func SmallestRangeFor(i IntervalPreset) RangePreset {
	return RangePreset(i)
}
