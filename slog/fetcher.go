// Package slog provides log/slog decorators for the copypasta services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/copypasta"
)

// Ensure LoggingFetcher implements copypasta.Fetcher.
var _ copypasta.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   copypasta.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next copypasta.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *copypasta.Resource, err error) {
	defer func(begin time.Time) {
		var n int
		var contentType string
		if res != nil {
			n = len(res.Body)
			contentType = res.ContentType
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"content_type", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
