package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/copypasta"
)

var _ copypasta.TextExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TextExtractor with logging. Each extraction
// warning is logged at warn level.
type LoggingExtractor struct {
	next   copypasta.TextExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next copypasta.TextExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the request and the resulting document size.
func (e *LoggingExtractor) Extract(ctx context.Context, req *copypasta.ExtractionRequest) (doc *copypasta.ExtractedDocument, err error) {
	defer func(begin time.Time) {
		kind := req.Kind
		var id string
		var chars, warnings int
		if doc != nil {
			kind = doc.Kind
			chars = len(doc.Text)
			warnings = len(doc.Warnings)
			if doc.Request != nil {
				id = doc.Request.ID
			}
			for _, w := range doc.Warnings {
				e.logger.Warn("extract warning", "id", id, "warning", w)
			}
		}
		e.logger.Info("extract",
			"id", id,
			"kind", kind.String(),
			"chars", chars,
			"warnings", warnings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, req)
}
