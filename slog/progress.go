package slog

import (
	"log/slog"

	"github.com/ghulammustafashad/medical/harvest"
)

// NewProgressLogger returns a harvest.ProgressFunc that logs every state
// transition. Aborted articles are logged as warnings and render
// failures as errors.
func NewProgressLogger(logger *slog.Logger) harvest.ProgressFunc {
	return func(e harvest.ProgressEvent) {
		attrs := []any{
			"article", e.Article.ID,
			"position", e.Position + 1,
			"total", e.Total,
		}

		switch e.State {
		case harvest.StateAborted:
			logger.Warn("article skipped", append(attrs, "outcome", e.Outcome, "err", e.Error)...)
		case harvest.StateRendered:
			if e.Error != nil {
				logger.Error("article render failed", append(attrs, "outcome", e.Outcome, "err", e.Error)...)
				return
			}
			logger.Info("article rendered", attrs...)
		default:
			logger.Debug("article "+e.State.String(), attrs...)
		}
	}
}
