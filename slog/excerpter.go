package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ghulammustafashad/medical"
)

// Ensure LoggingExcerpter implements medical.Excerpter.
var _ medical.Excerpter = (*LoggingExcerpter)(nil)

// LoggingExcerpter wraps an Excerpter with debug logging.
type LoggingExcerpter struct {
	next   medical.Excerpter
	logger *slog.Logger
}

// NewLoggingExcerpter creates a new LoggingExcerpter.
func NewLoggingExcerpter(next medical.Excerpter, logger *slog.Logger) *LoggingExcerpter {
	return &LoggingExcerpter{next: next, logger: logger}
}

// Excerpt delegates to the wrapped excerpter and logs the size reduction.
// Failures are logged as warnings since callers fall back to the budget.
func (e *LoggingExcerpter) Excerpt(ctx context.Context, text string, maxWords int) (excerpt string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Warn("excerpt failed",
				"max_words", maxWords,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Debug("excerpt",
			"max_words", maxWords,
			"in_bytes", len(text),
			"out_bytes", len(excerpt),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Excerpt(ctx, text, maxWords)
}
