package slog

import (
	"log/slog"
	"time"

	"github.com/froest/routegpx"
)

// Ensure LoggingExtractor implements routegpx.Extractor.
var _ routegpx.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   routegpx.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next routegpx.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) *routegpx.ExtractResult {
	begin := time.Now()
	result := e.next.Extract(html)
	e.logger.Info("extract",
		"bytes", len(html),
		"stops", len(result.Stops),
		"warnings", len(result.Warnings),
		"confidence", string(result.Confidence),
		"duration", time.Since(begin),
	)
	return result
}
