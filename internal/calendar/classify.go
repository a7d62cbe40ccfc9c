package calendar

import (
	"fmt"
	"time"

	"github.com/username/plaincal/pkg/dateutil"
)

var weekdayNames = [...]string{
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
	time.Sunday:    "Sunday",
}

var monthNames = [...]string{
	time.January:   "January",
	time.February:  "February",
	time.March:     "March",
	time.April:     "April",
	time.May:       "May",
	time.June:      "June",
	time.July:      "July",
	time.August:    "August",
	time.September: "September",
	time.October:   "October",
	time.November:  "November",
	time.December:  "December",
}

// DayInfo is everything the formatter needs to know about one date
type DayInfo struct {
	Date        time.Time
	Weekday     time.Weekday
	WeekdayName string
	MonthName   string
	IsWeekend   bool
}

// Classify derives the weekday, month and weekend status of date
func Classify(date time.Time) (DayInfo, error) {
	month, err := MonthName(date)
	if err != nil {
		return DayInfo{}, err
	}

	return DayInfo{
		Date:        date,
		Weekday:     WeekdayOf(date),
		WeekdayName: WeekdayName(date),
		MonthName:   month,
		IsWeekend:   IsWeekend(date),
	}, nil
}

func WeekdayOf(date time.Time) time.Weekday {
	return date.Weekday()
}

// WeekdayName returns the full English weekday name
func WeekdayName(date time.Time) string {
	return weekdayNames[WeekdayOf(date)]
}

// MonthOf returns the month of date, checked against 1..12
func MonthOf(date time.Time) (time.Month, error) {
	month := date.Month()
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	return month, nil
}

// MonthName returns the full English month name
func MonthName(date time.Time) (string, error) {
	month, err := MonthOf(date)
	if err != nil {
		return "", err
	}
	return monthNames[month], nil
}

func IsWeekend(date time.Time) bool {
	return dateutil.IsWeekend(date)
}
