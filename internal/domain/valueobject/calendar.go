package valueobject

import "time"

// RangeFor returns the calendar-aligned range of preset p containing anchor.
func RangeFor(p RangePreset, anchor time.Time) DateRange {
	return unitBounds(p.unit(), anchor)
}

// IntervalFor returns the calendar-aligned interval of preset p containing anchor.
func IntervalFor(p IntervalPreset, anchor time.Time) DateRange {
	return unitBounds(p.unit(), anchor)
}

// NextRange returns the range of preset p that starts the day after r ends.
func NextRange(p RangePreset, r DateRange) DateRange {
	return RangeFor(p, r.End)
}

// PreviousRange returns the range of preset p that ends the day before r starts.
func PreviousRange(p RangePreset, r DateRange) DateRange {
	return RangeFor(p, r.Start.AddDate(0, 0, -1))
}

// IntervalSpan is one interval of a partitioned range.
// Unit is the full calendar interval; Bounds is the part of it inside the parent range.
type IntervalSpan struct {
	Unit   DateRange
	Bounds DateRange
}

// Partition splits r into consecutive calendar-aligned intervals of preset p.
// The Bounds of the returned spans tile r exactly.
func Partition(r DateRange, p IntervalPreset) []IntervalSpan {
	if r.IsEmpty() || !p.IsValid() {
		return nil
	}

	var spans []IntervalSpan
	for cursor := r.Start; cursor.Before(r.End); {
		unit := IntervalFor(p, cursor)
		spans = append(spans, IntervalSpan{Unit: unit, Bounds: unit.Intersect(r)})
		cursor = unit.End
	}
	return spans
}

func unitBounds(u calendarUnit, anchor time.Time) DateRange {
	d := Date(anchor)
	year, month, day := d.Date()

	var start, end time.Time
	switch u {
	case unitWeek:
		// Week starts on Monday
		weekday := int(d.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = d.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 7)
	case unitFortnight:
		if day <= 14 {
			start = NewDate(year, month, 1)
			end = NewDate(year, month, 15)
		} else {
			start = NewDate(year, month, 15)
			end = NewDate(year, month, 1).AddDate(0, 1, 0)
		}
	case unitMonth:
		start = NewDate(year, month, 1)
		end = start.AddDate(0, 1, 0)
	case unitQuarter:
		quarter := (int(month) - 1) / 3
		start = NewDate(year, time.Month(quarter*3+1), 1)
		end = start.AddDate(0, 3, 0)
	case unitHalfYear:
		startMonth := time.January
		if month >= time.July {
			startMonth = time.July
		}
		start = NewDate(year, startMonth, 1)
		end = start.AddDate(0, 6, 0)
	case unitYear:
		start = NewDate(year, time.January, 1)
		end = start.AddDate(1, 0, 0)
	default:
		start = d
		end = d.AddDate(0, 0, 1)
	}
	return DateRange{Start: start, End: end}
}
