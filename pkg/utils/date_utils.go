package utils

import "time"

const ISODateLayout = "2006-01-02"

// ParseISODate parses a calendar date in YYYY-MM-DD form.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, s)
}

func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// DayCountInclusive counts the calendar days a trip spans, both endpoints
// included, so June 1 to June 3 is three days. Never less than 1.
func DayCountInclusive(start, end time.Time) int {
	if end.Before(start) {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DateForDay resolves the calendar date of a 0-based day offset.
func DateForDay(start time.Time, offset int) time.Time {
	return start.AddDate(0, 0, offset)
}
