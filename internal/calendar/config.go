package calendar

import (
	"fmt"
	"strings"

	"github.com/username/plaincal/pkg/dateutil"
)

// weekendMarkerWidth is fixed and does not follow the line length
const weekendMarkerWidth = 4

// Config holds the formatting parameters of a listing. Build it with NewConfig.
type Config struct {
	DateFormat        string
	LineLength        int
	WeekendLineMarker string
	WeekLineSep       string
	DayLineSep        string
}

// NewConfig derives the separator lines and the weekend marker from
// the line length and the three decoration characters.
func NewConfig(lineLength int, daySep, weekSep, weekendMarker rune) (Config, error) {
	if lineLength <= 0 {
		return Config{}, fmt.Errorf("%w: line length must be positive, got %d", ErrInvalidConfig, lineLength)
	}

	return Config{
		DateFormat:        dateutil.ISODate,
		LineLength:        lineLength,
		WeekendLineMarker: strings.Repeat(string(weekendMarker), weekendMarkerWidth),
		WeekLineSep:       strings.Repeat(string(weekSep), lineLength),
		DayLineSep:        strings.Repeat(string(daySep), lineLength),
	}, nil
}
