package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TrendState classifies a tag's spending against its historical average.
type TrendState string

const (
	TrendOnTrack          TrendState = "on_track"
	TrendOverspending     TrendState = "overspending"
	TrendSaving           TrendState = "saving"
	TrendInsufficientData TrendState = "insufficient_data"
)

// MinimumMonthsOfData is the number of distinct months a tag needs before it is classified.
const MinimumMonthsOfData = 2

// displayThreshold is the absolute percentage change at which a trend stops being on track.
var displayThreshold = decimal.RequireFromString("5.5")

// ClassifyTrend maps a percentage change to a trend state.
// Tags without a historical month, or with fewer than MinimumMonthsOfData months overall,
// are InsufficientData regardless of the change.
func ClassifyTrend(percentageChange decimal.Decimal, historicalMonths, totalMonths int) TrendState {
	if historicalMonths < 1 || totalMonths < MinimumMonthsOfData {
		return TrendInsufficientData
	}
	switch {
	case percentageChange.GreaterThanOrEqual(displayThreshold):
		return TrendOverspending
	case percentageChange.LessThanOrEqual(displayThreshold.Neg()):
		return TrendSaving
	default:
		return TrendOnTrack
	}
}

// Label returns the card heading for the state.
func (s TrendState) Label() string {
	switch s {
	case TrendOverspending:
		return "Overspending"
	case TrendSaving:
		return "Saving"
	case TrendOnTrack:
		return "On track"
	default:
		return "Not enough data"
	}
}

// FormatPercentage renders a whole-number percentage such as "+12%" or "-4%".
// Values that round to zero render as "0%", never "-0%".
func FormatPercentage(pct decimal.Decimal) string {
	rounded := pct.Round(0)
	if rounded.IsZero() {
		return "0%"
	}
	if rounded.IsPositive() {
		return fmt.Sprintf("+%s%%", rounded.String())
	}
	return rounded.String() + "%"
}
