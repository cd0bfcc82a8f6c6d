package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ghulammustafashad/medical"
)

// Ensure LoggingDocumentRenderer implements medical.DocumentRenderer.
var _ medical.DocumentRenderer = (*LoggingDocumentRenderer)(nil)

// LoggingDocumentRenderer wraps a DocumentRenderer with logging.
type LoggingDocumentRenderer struct {
	next   medical.DocumentRenderer
	logger *slog.Logger
}

// NewLoggingDocumentRenderer creates a new LoggingDocumentRenderer.
func NewLoggingDocumentRenderer(next medical.DocumentRenderer, logger *slog.Logger) *LoggingDocumentRenderer {
	return &LoggingDocumentRenderer{next: next, logger: logger}
}

// RenderDocument delegates to the wrapped renderer and logs the operation.
func (r *LoggingDocumentRenderer) RenderDocument(ctx context.Context, d *medical.Digest) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("render document",
			"article", d.Article.ID,
			"sections", d.Sections.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderDocument(ctx, d)
}

// Ensure LoggingAudioRenderer implements medical.AudioRenderer.
var _ medical.AudioRenderer = (*LoggingAudioRenderer)(nil)

// LoggingAudioRenderer wraps an AudioRenderer with logging.
type LoggingAudioRenderer struct {
	next   medical.AudioRenderer
	logger *slog.Logger
}

// NewLoggingAudioRenderer creates a new LoggingAudioRenderer.
func NewLoggingAudioRenderer(next medical.AudioRenderer, logger *slog.Logger) *LoggingAudioRenderer {
	return &LoggingAudioRenderer{next: next, logger: logger}
}

// RenderAudio delegates to the wrapped renderer and logs the operation.
func (r *LoggingAudioRenderer) RenderAudio(ctx context.Context, d *medical.Digest) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("render audio",
			"article", d.Article.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderAudio(ctx, d)
}
