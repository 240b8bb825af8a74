package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/copypasta"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

var _ copypasta.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries transient fetch failures with backoff. Transport
// errors, 429 and 5xx responses are retried; anything else is returned
// immediately.
type RetryFetcher struct {
	next   copypasta.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next. One retry is made per delay. A nil logger
// disables retry logging.
func NewRetryFetcher(next copypasta.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch calls the wrapped fetcher until it succeeds, fails permanently or
// runs out of retries.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (*copypasta.Resource, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		res, err := f.next.Fetch(ctx, url)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if attempt == len(f.delays) || !retryable(err) {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		f.logger.Info("retry", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}
	return nil, lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}
	return copypasta.ErrorCode(err) == copypasta.EINTERNAL
}
