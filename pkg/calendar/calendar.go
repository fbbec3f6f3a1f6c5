package calendar

import (
	"time"
)

// DateLayout is the ISO 8601 calendar date format used for stored shift dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO date ("2025-10-02") as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formats t as an ISO date, dropping the time of day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ShortWeekday returns the three-letter English day name ("Mon".."Sun").
func ShortWeekday(t time.Time) string {
	return t.Weekday().String()[:3]
}
