package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/username/plaincal/pkg/dateutil"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := NewConfig(35, '-', '=', '#')
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	return cfg
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseStrict(dateutil.ISODate, s)
	if err != nil {
		t.Fatalf("ParseStrict(%q) error = %v", s, err)
	}
	return d
}

func TestExpand(t *testing.T) {
	cfg := testConfig(t)

	dr, err := Expand("2023-11-11", "2023-11-20", cfg)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	if dr.Len() != 10 {
		t.Errorf("Len() = %d, want 10", dr.Len())
	}
	if !dr.Contains(mustDate(t, "2023-11-11")) {
		t.Error("range does not contain its start")
	}
	if !dr.Contains(mustDate(t, "2023-11-20")) {
		t.Error("range does not contain its end")
	}
	if !dr.Start().Equal(mustDate(t, "2023-11-11")) || !dr.End().Equal(mustDate(t, "2023-11-20")) {
		t.Errorf("Start/End = %v/%v", dr.Start(), dr.End())
	}
}

func TestExpand_AscendingWithoutGaps(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"single day", "2023-11-11", "2023-11-11"},
		{"month boundary", "2023-11-25", "2023-12-05"},
		{"year boundary", "2023-11-11", "2024-01-01"},
		{"leap february", "2024-02-20", "2024-03-02"},
		{"whole year", "2024-01-01", "2024-12-31"},
		{"over three centuries", "1700-01-01", "2023-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := Expand(tt.from, tt.to, cfg)
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}

			start, end := mustDate(t, tt.from), mustDate(t, tt.to)
			want := dateutil.DaysBetween(start, end) + 1
			if dr.Len() != want {
				t.Fatalf("Len() = %d, want %d", dr.Len(), want)
			}

			dates := dr.Dates()
			if !dates[0].Equal(start) || !dates[len(dates)-1].Equal(end) {
				t.Errorf("endpoints = %v..%v, want %v..%v", dates[0], dates[len(dates)-1], start, end)
			}
			for i := 1; i < len(dates); i++ {
				if dateutil.DaysBetween(dates[i-1], dates[i]) != 1 {
					t.Fatalf("gap or duplicate between %v and %v", dates[i-1], dates[i])
				}
			}
		})
	}
}

func TestExpand_LongRangeLength(t *testing.T) {
	dr, err := Expand("1700-01-01", "2023-01-01", testConfig(t))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	if dr.Len() != 117974 {
		t.Errorf("Len() = %d, want 117974", dr.Len())
	}
	if !dr.End().Equal(mustDate(t, "2023-01-01")) {
		t.Errorf("End() = %v, want 2023-01-01", dr.End())
	}
}

func TestExpand_InvalidDates(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name      string
		from      string
		to        string
		wantField string
	}{
		{"malformed from", "11/11/2023", "2023-11-20", "from"},
		{"malformed to", "2023-11-11", "2023-11-2", "to"},
		{"nonexistent day", "2023-11-31", "2023-12-05", "from"},
		{"non-leap february", "2023-02-01", "2023-02-29", "to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := Expand(tt.from, tt.to, cfg)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("Expand() error = %v, want ErrInvalidDate", err)
			}

			var dateErr *DateError
			if !errors.As(err, &dateErr) {
				t.Fatalf("Expand() error %T is not a *DateError", err)
			}
			if dateErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", dateErr.Field, tt.wantField)
			}
			if dr.Len() != 0 {
				t.Errorf("partial range returned: %d days", dr.Len())
			}
		})
	}
}

func TestExpand_ReversedRange(t *testing.T) {
	cfg := testConfig(t)

	_, err := Expand("2023-11-20", "2023-11-11", cfg)
	if !errors.Is(err, ErrReversedRange) {
		t.Errorf("Expand() error = %v, want ErrReversedRange", err)
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expand() error = %v, want ErrInvalidDate", err)
	}
}

func TestDateRange_DatesIsCopy(t *testing.T) {
	dr, err := Expand("2023-11-11", "2023-11-12", testConfig(t))
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	dates := dr.Dates()
	dates[0] = time.Time{}

	if !dr.Start().Equal(mustDate(t, "2023-11-11")) {
		t.Error("modifying Dates() result changed the range")
	}
}
