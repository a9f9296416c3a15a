package valueobject

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

var monthAbbreviations = [...]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthAbbreviation returns the three letter English name of m.
func MonthAbbreviation(m time.Month) string {
	return monthAbbreviations[m]
}

// Date truncates t to its calendar day at UTC midnight.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDate builds a UTC midnight date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MonthStart returns the first day of the month containing t.
func MonthStart(t time.Time) time.Time {
	return NewDate(t.Year(), t.Month(), 1)
}

// DateRange is a half-open span of calendar days: Start is included, End is not.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalises both bounds to dates. End before Start collapses to an empty range.
func NewDateRange(start, end time.Time) DateRange {
	start, end = Date(start), Date(end)
	if end.Before(start) {
		end = start
	}
	return DateRange{Start: start, End: end}
}

// IsEmpty reports whether the range holds no day.
func (r DateRange) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

// Contains reports whether the calendar day of d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	d = Date(d)
	return !d.Before(r.Start) && d.Before(r.End)
}

// LastDay returns the inclusive last day of a non-empty range.
func (r DateRange) LastDay() time.Time {
	return r.End.AddDate(0, 0, -1)
}

// Days returns the number of days spanned.
func (r DateRange) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps reports whether both ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Intersect returns the days present in both ranges.
func (r DateRange) Intersect(o DateRange) DateRange {
	start, end := r.Start, r.End
	if o.Start.After(start) {
		start = o.Start
	}
	if o.End.Before(end) {
		end = o.End
	}
	if end.Before(start) {
		end = start
	}
	return DateRange{Start: start, End: end}
}

// Equal compares bounds by instant.
func (r DateRange) Equal(o DateRange) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

// Label renders the range as "9 Sep 2024 - 15 Sep 2024".
func (r DateRange) Label() string {
	if r.IsEmpty() {
		return formatLabelDate(r.Start)
	}
	return fmt.Sprintf("%s - %s", formatLabelDate(r.Start), formatLabelDate(r.LastDay()))
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}

func formatLabelDate(d time.Time) string {
	return fmt.Sprintf("%d %s %04d", d.Day(), MonthAbbreviation(d.Month()), d.Year())
}
