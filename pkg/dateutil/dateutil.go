package dateutil

import "time"

// ISODate is the layout used for range endpoints (2023-11-11)
const ISODate = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	return !IsWeekday(date)
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of calendar days from start to end.
// Negative when end is before start. Works on day numbers rather than
// time.Duration, which cannot span more than ~292 years.
func DaysBetween(start, end time.Time) int {
	return int(dayNumber(end) - dayNumber(start))
}

// dayNumber counts days since 1970-01-01 for the calendar date of t
func dayNumber(t time.Time) int64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Unix() / secondsPerDay
}

// ParseStrict parses dateStr with exactly one layout and returns a UTC date.
// Trailing text such as a time of day is rejected by time.Parse itself.
func ParseStrict(layout, dateStr string) (time.Time, error) {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatDotted formats date as DD.MM.YYYY
func FormatDotted(date time.Time) string {
	return date.Format("02.01.2006")
}
