// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	"github.com/budgeteur/backend/internal/domain/valueobject"
)

// MonthLayout is the wire format of a target month.
const MonthLayout = "2006-01"

// HistoryMonths is the number of months a dashboard window spans, target month included.
const HistoryMonths = 12

// ParseMonth parses "2024-09" into the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	m, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return valueobject.MonthStart(m), nil
}

// LastCompleteMonth returns the first day of the month before the one containing today.
func LastCompleteMonth(today time.Time) time.Time {
	return valueobject.MonthStart(today).AddDate(0, -1, 0)
}

// WindowEndingAt returns the months months ending with (and including) the month of target.
func WindowEndingAt(target time.Time, months int) valueobject.DateRange {
	end := valueobject.MonthStart(target).AddDate(0, 1, 0)
	return valueobject.NewDateRange(end.AddDate(0, -months, 0), end)
}

// GenerateMonthLabel renders a month as "Sep 2024".
func GenerateMonthLabel(month time.Time) string {
	return fmt.Sprintf("%s %d", valueobject.MonthAbbreviation(month.Month()), month.Year())
}

// GenerateMonthLabels renders every month, oldest first.
func GenerateMonthLabels(months []time.Time) []string {
	labels := make([]string, 0, len(months))
	for _, m := range months {
		labels = append(labels, GenerateMonthLabel(m))
	}
	return labels
}
