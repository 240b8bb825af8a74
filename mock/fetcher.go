package mock

import (
	"context"

	"github.com/fwojciec/copypasta"
)

var _ copypasta.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of copypasta.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*copypasta.Resource, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*copypasta.Resource, error) {
	return f.FetchFn(ctx, url)
}

var _ copypasta.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of copypasta.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, key string) error
}

func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.WaitFn(ctx, key)
}
