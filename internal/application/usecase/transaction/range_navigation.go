package transaction

import (
	"time"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// RangeLink points at a neighbouring range of the same preset.
type RangeLink struct {
	Range  valueobject.DateRange
	Anchor time.Time
}

// Label renders the linked range.
func (l RangeLink) Label() string {
	return l.Range.Label()
}

// RangeNavigation holds the links offered around the current range.
// Previous and Next are nil when no transaction lies in that direction.
type RangeNavigation struct {
	Current  valueobject.DateRange
	Previous *RangeLink
	Next     *RangeLink
	Latest   *RangeLink
}

// BuildRangeNavigation computes the previous, next and latest links of current.
func BuildRangeNavigation(
	preset valueobject.RangePreset,
	current valueobject.DateRange,
	bounds entity.TransactionDateBounds,
) RangeNavigation {
	nav := RangeNavigation{Current: current}
	if !bounds.HasData() {
		return nav
	}

	oldest := valueobject.Date(*bounds.OldestDate)
	newest := valueobject.Date(*bounds.NewestDate)

	if oldest.Before(current.Start) {
		prev := valueobject.PreviousRange(preset, current)
		nav.Previous = &RangeLink{Range: prev, Anchor: prev.Start}
	}
	if !newest.Before(current.End) {
		next := valueobject.NextRange(preset, current)
		nav.Next = &RangeLink{Range: next, Anchor: next.Start}
	}
	if latest := valueobject.RangeFor(preset, newest); !latest.Equal(current) {
		nav.Latest = &RangeLink{Range: latest, Anchor: latest.Start}
	}
	return nav
}
