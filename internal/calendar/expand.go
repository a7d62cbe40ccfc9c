package calendar

import (
	"fmt"
	"time"

	"github.com/username/plaincal/pkg/dateutil"
)

// DateRange is an inclusive, gap-free, ascending run of calendar days
type DateRange struct {
	dates []time.Time
}

// Expand parses from and to with cfg.DateFormat and returns every day
// between them, both endpoints included.
func Expand(from, to string, cfg Config) (DateRange, error) {
	start, err := dateutil.ParseStrict(cfg.DateFormat, from)
	if err != nil {
		return DateRange{}, &DateError{Field: "from", Value: from, Err: err}
	}
	end, err := dateutil.ParseStrict(cfg.DateFormat, to)
	if err != nil {
		return DateRange{}, &DateError{Field: "to", Value: to, Err: err}
	}

	days := dateutil.DaysBetween(start, end) + 1
	if days <= 0 {
		return DateRange{}, fmt.Errorf("%w: %w: %s > %s", ErrInvalidDate, ErrReversedRange, from, to)
	}

	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}

	return DateRange{dates: dates}, nil
}

// Len returns the number of days in the range
func (r DateRange) Len() int {
	return len(r.dates)
}

// Dates returns a copy of the days in ascending order
func (r DateRange) Dates() []time.Time {
	out := make([]time.Time, len(r.dates))
	copy(out, r.dates)
	return out
}

func (r DateRange) Start() time.Time {
	if len(r.dates) == 0 {
		return time.Time{}
	}
	return r.dates[0]
}

func (r DateRange) End() time.Time {
	if len(r.dates) == 0 {
		return time.Time{}
	}
	return r.dates[len(r.dates)-1]
}

// Contains reports whether date falls on one of the days of the range
func (r DateRange) Contains(date time.Time) bool {
	for _, d := range r.dates {
		if dateutil.IsSameDay(d, date) {
			return true
		}
	}
	return false
}
