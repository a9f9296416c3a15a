package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func TestBuildRangeNavigation(t *testing.T) {
	oldest := valueobject.NewDate(2024, 1, 15)
	newest := valueobject.NewDate(2024, 6, 10)
	bounds := entity.TransactionDateBounds{OldestDate: &oldest, NewestDate: &newest, TotalTransactions: 10}

	tests := []struct {
		name       string
		preset     valueobject.RangePreset
		anchor     time.Time
		wantPrev   bool
		wantNext   bool
		wantLatest bool
	}{
		{"middle of the data", valueobject.RangeMonth, valueobject.NewDate(2024, 3, 5), true, true, true},
		{"first month", valueobject.RangeMonth, valueobject.NewDate(2024, 1, 20), false, true, true},
		{"latest month", valueobject.RangeMonth, valueobject.NewDate(2024, 6, 1), true, false, false},
		{"year holds everything", valueobject.RangeYear, valueobject.NewDate(2024, 6, 1), false, false, false},
		{"after the data", valueobject.RangeQuarter, valueobject.NewDate(2024, 10, 1), true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := valueobject.RangeFor(tt.preset, tt.anchor)
			nav := BuildRangeNavigation(tt.preset, current, bounds)

			assert.Equal(t, tt.wantPrev, nav.Previous != nil, "previous")
			assert.Equal(t, tt.wantNext, nav.Next != nil, "next")
			assert.Equal(t, tt.wantLatest, nav.Latest != nil, "latest")

			if nav.Previous != nil {
				assert.True(t, nav.Previous.Range.End.Equal(current.Start))
			}
			if nav.Next != nil {
				assert.True(t, nav.Next.Range.Start.Equal(current.End))
			}
		})
	}
}

func TestBuildRangeNavigation_NoData(t *testing.T) {
	current := valueobject.RangeFor(valueobject.RangeMonth, valueobject.NewDate(2024, 3, 5))
	nav := BuildRangeNavigation(valueobject.RangeMonth, current, entity.TransactionDateBounds{})

	require.True(t, nav.Current.Equal(current))
	assert.Nil(t, nav.Previous)
	assert.Nil(t, nav.Next)
	assert.Nil(t, nav.Latest)
}
