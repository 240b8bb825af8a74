package copypasta

import "context"

// Resource is a fetched URL with its declared content type.
type Resource struct {
	URL         string
	ContentType string
	Body        []byte
}

// Fetcher retrieves resources over the network.
type Fetcher interface {
	// Fetch retrieves the resource at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Resource, error)
}

// Limiter provides keyed rate limiting, e.g. per host or per credential.
type Limiter interface {
	// Wait blocks until the rate limit allows a request for key.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, key string) error
}
