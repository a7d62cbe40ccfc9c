package calendar

import (
	"fmt"

	"go.uber.org/zap"
)

// Generator runs the expand and format pipeline for one Config
type Generator struct {
	cfg    Config
	logger *zap.Logger
}

// NewGenerator creates a new Generator instance
func NewGenerator(cfg Config, logger *zap.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

// Generate builds the listing for the inclusive range from..to.
// Nothing is returned unless every date was formatted.
func (g *Generator) Generate(from, to string) (Results, error) {
	g.logger.Debug("Expanding date range",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("format", g.cfg.DateFormat))

	dr, err := Expand(from, to, g.cfg)
	if err != nil {
		return Results{}, fmt.Errorf("failed to expand date range: %w", err)
	}

	results, err := Format(dr, g.cfg)
	if err != nil {
		return Results{}, fmt.Errorf("failed to format calendar: %w", err)
	}

	g.logger.Info("Calendar generated",
		zap.Time("start", dr.Start()),
		zap.Time("end", dr.End()),
		zap.Int("days", dr.Len()),
		zap.Int("lines", results.Len()),
		zap.Int("line_length", g.cfg.LineLength))

	return results, nil
}
