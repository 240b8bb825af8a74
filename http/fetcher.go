// Package http provides an HTTP-based implementation of copypasta.Fetcher.
// A single GET both classifies a URL (by its Content-Type) and supplies the
// bytes used for extraction.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/copypasta"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxBodySize caps the number of bytes read from a response.
const DefaultMaxBodySize = 64 << 20

// DefaultUserAgent identifies the fetcher to remote servers.
const DefaultUserAgent = "copypasta/1.0 (+https://github.com/fwojciec/copypasta)"

// Ensure Fetcher implements copypasta.Fetcher at compile time.
var _ copypasta.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources from URLs using HTTP GET requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
	userAgent   string
	limiter     copypasta.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize limits how many bytes of a response body are read.
// Larger responses fail with EINVALID rather than being truncated.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter applies a per-host rate limit before each request.
func WithLimiter(l copypasta.Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
		userAgent:   DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the resource at rawURL along with its Content-Type.
// Non-2xx responses are returned as EUNAVAILABLE errors.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*copypasta.Resource, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, copypasta.Errorf(copypasta.EINVALID, "Please enter a valid URL.")
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			err:        copypasta.Errorf(copypasta.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, copypasta.Errorf(copypasta.EINVALID, "response too large: %s exceeds %d bytes", rawURL, f.maxBodySize)
	}

	return &copypasta.Resource{
		URL:         resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// StatusError is returned for non-2xx responses. It unwraps to an
// EUNAVAILABLE *copypasta.Error.
type StatusError struct {
	StatusCode int
	err        *copypasta.Error
}

func (e *StatusError) Error() string { return e.err.Error() }

func (e *StatusError) Unwrap() error { return e.err }
