// Package gemini implements copypasta.Completer and copypasta.TokenCounter
// using Google Gemini.
package gemini

import (
	"context"
	"net/http"
	"sync"

	"github.com/fwojciec/copypasta"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements copypasta.Completer at compile time.
var _ copypasta.Completer = (*Completer)(nil)

// Completer sends prompts to Gemini, keeping one client per credential.
type Completer struct {
	model      string
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex
	clients map[string]*genai.Client
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Completer) {
		c.baseURL = u
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Completer) {
		c.httpClient = hc
	}
}

// NewCompleter creates a new Completer.
func NewCompleter(opts ...Option) *Completer {
	c := &Completer{
		model:   DefaultModel,
		clients: make(map[string]*genai.Client),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends prompt as a single user turn and returns the reply text.
func (c *Completer) Complete(ctx context.Context, cred copypasta.Credential, prompt string) (string, error) {
	if prompt == "" {
		return "", copypasta.Errorf(copypasta.EINVALID, "prompt required")
	}

	client, err := c.client(ctx, cred)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", copypasta.Errorf(copypasta.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// client returns the cached client for cred, creating it on first use.
func (c *Completer) client(ctx context.Context, cred copypasta.Credential) (*genai.Client, error) {
	if cred.Key == "" {
		return nil, copypasta.Errorf(copypasta.EINVALID, "credential %s has no key", cred)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[cred.Key]; ok {
		return client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cred.Key,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.baseURL},
	})
	if err != nil {
		return nil, err
	}
	c.clients[cred.Key] = client
	return client, nil
}
