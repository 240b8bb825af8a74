// Package openrouter implements copypasta.Completer against the OpenRouter
// OpenAI-compatible chat completions API.
package openrouter

import (
	"context"
	"net/http"
	"sync"

	"github.com/fwojciec/copypasta"
	openai "github.com/sashabaranov/go-openai"
)

// Defaults for the OpenRouter endpoint.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "meta-llama/llama-3-8b-instruct:free"
	DefaultReferer = "copypasta.streamlit.app"
	DefaultTitle   = "copypasta"
)

// Ensure Completer implements copypasta.Completer at compile time.
var _ copypasta.Completer = (*Completer)(nil)

// Completer sends prompts to OpenRouter, keeping one client per credential.
type Completer struct {
	baseURL    string
	model      string
	referer    string
	title      string
	httpClient *http.Client

	mu      sync.Mutex
	clients map[string]*openai.Client
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel sets the model identifier.
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

// WithAttribution sets the HTTP-Referer and X-Title headers used for
// OpenRouter app attribution.
func WithAttribution(referer, title string) Option {
	return func(c *Completer) {
		c.referer = referer
		c.title = title
	}
}

// WithHTTPClient sets the base HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Completer) {
		c.httpClient = hc
	}
}

// NewCompleter creates a new Completer.
func NewCompleter(opts ...Option) *Completer {
	c := &Completer{
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		referer:    DefaultReferer,
		title:      DefaultTitle,
		httpClient: http.DefaultClient,
		clients:    make(map[string]*openai.Client),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (c *Completer) Complete(ctx context.Context, cred copypasta.Credential, prompt string) (string, error) {
	if prompt == "" {
		return "", copypasta.Errorf(copypasta.EINVALID, "prompt required")
	}
	if cred.Key == "" {
		return "", copypasta.Errorf(copypasta.EINVALID, "credential %s has no key", cred)
	}

	resp, err := c.client(cred.Key).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", copypasta.Errorf(copypasta.EINTERNAL, "openrouter returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Completer) client(key string) *openai.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[key]; ok {
		return client
	}

	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &headerTransport{
			next:    c.httpClient.Transport,
			referer: c.referer,
			title:   c.title,
		},
	}
	client := openai.NewClientWithConfig(cfg)
	c.clients[key] = client
	return client
}

// headerTransport adds OpenRouter attribution headers to every request.
type headerTransport struct {
	next    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}
