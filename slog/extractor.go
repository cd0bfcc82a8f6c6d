package slog

import (
	"log/slog"
	"time"

	"github.com/ghulammustafashad/medical"
)

// Ensure LoggingExtractor implements medical.Extractor.
var _ medical.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   medical.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next medical.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string) (result *medical.Extraction, err error) {
	defer func(begin time.Time) {
		var abstract, sections int
		if result != nil {
			abstract = len(result.Abstract)
			sections = result.Sections.Len()
		}
		e.logger.Debug("extract",
			"abstract_bytes", abstract,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
