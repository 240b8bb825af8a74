package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/copypasta"
)

var _ copypasta.OCR = (*LoggingOCR)(nil)

// LoggingOCR wraps an OCR engine with logging.
type LoggingOCR struct {
	next   copypasta.OCR
	logger *slog.Logger
}

// NewLoggingOCR creates a new LoggingOCR.
func NewLoggingOCR(next copypasta.OCR, logger *slog.Logger) *LoggingOCR {
	return &LoggingOCR{next: next, logger: logger}
}

// Recognize logs the image size and span count.
func (o *LoggingOCR) Recognize(ctx context.Context, image []byte) (spans []string, err error) {
	defer func(begin time.Time) {
		o.logger.Info("ocr",
			"bytes", len(image),
			"spans", len(spans),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.Recognize(ctx, image)
}

var _ copypasta.Rasterizer = (*LoggingRasterizer)(nil)

// LoggingRasterizer wraps a Rasterizer with logging.
type LoggingRasterizer struct {
	next   copypasta.Rasterizer
	logger *slog.Logger
}

// NewLoggingRasterizer creates a new LoggingRasterizer.
func NewLoggingRasterizer(next copypasta.Rasterizer, logger *slog.Logger) *LoggingRasterizer {
	return &LoggingRasterizer{next: next, logger: logger}
}

// Rasterize logs the page and the size of the rendered image.
func (r *LoggingRasterizer) Rasterize(ctx context.Context, pdf []byte, page int) (img []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Info("rasterize",
			"page", page,
			"bytes", len(img),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rasterize(ctx, pdf, page)
}
