package calendar

import (
	"strings"
	"time"

	"github.com/username/plaincal/pkg/dateutil"
)

// A day line containing any of these is preceded by the week separator.
// The match is on the rendered text, not on the weekday itself.
var weekBoundaryWords = []string{"Sunday", "Saturday", "Monday"}

// Results is the formatted listing: a separator line followed by a day
// line for every date of the range.
type Results struct {
	lines []string
}

// Format renders r line by line
func Format(r DateRange, cfg Config) (Results, error) {
	lines := make([]string, 0, 2*r.Len())

	for _, date := range r.dates {
		day, err := Classify(date)
		if err != nil {
			return Results{}, err
		}

		daySep, weekSep := separators(date, day.MonthName, cfg)
		body := dayLine(date, day.WeekdayName, cfg.LineLength)

		sep := daySep
		if marksWeekBoundary(body) {
			sep = weekSep
		}
		if day.IsWeekend {
			body += cfg.WeekendLineMarker
		}

		lines = append(lines, sep, body)
	}

	return Results{lines: lines}, nil
}

// separators returns the plain and the week separator for date. On the
// first of a month both carry the month name.
func separators(date time.Time, monthName string, cfg Config) (day, week string) {
	day, week = cfg.DayLineSep, cfg.WeekLineSep
	if date.Day() == 1 {
		day += monthName
		week += monthName
	}
	return day, week
}

// dayLine renders "DD.MM.YYYY Weekday" padded or cut to exactly width characters
func dayLine(date time.Time, weekdayName string, width int) string {
	var b strings.Builder
	b.WriteString(dateutil.FormatDotted(date))
	b.WriteString(" ")
	b.WriteString(weekdayName)
	b.WriteString(strings.Repeat(" ", width))

	return string([]rune(b.String())[:width])
}

func marksWeekBoundary(line string) bool {
	for _, word := range weekBoundaryWords {
		if strings.Contains(line, word) {
			return true
		}
	}
	return false
}

// Lines returns a copy of the formatted lines
func (r Results) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r Results) Len() int {
	return len(r.lines)
}

// String joins the lines with newlines, the form persisted to disk
func (r Results) String() string {
	return strings.Join(r.lines, "\n")
}
