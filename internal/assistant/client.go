package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	app_errors "safik-ai/site/internal/errors"
)

// maxBodyBytes caps how much of a backend response is read into memory.
const maxBodyBytes = 1 << 20

// Request is the body POSTed to the question-answering endpoint.
type Request struct {
	Question string `json:"question"`
}

// Answer is a successful reply from the question-answering endpoint.
type Answer struct {
	Text    string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// wireAnswer keeps Answer distinguishable from a body that omits "answer".
type wireAnswer struct {
	Answer  *string  `json:"answer"`
	Sources []string `json:"sources"`
}

// Asker defines the contract for forwarding a question to the assistant backend.
type Asker interface {
	Ask(ctx context.Context, question string) (*Answer, error)
}

// Client is an HTTP implementation of Asker.
type Client struct {
	client   *http.Client
	endpoint string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every backend call; a timeout surfaces as ErrUnavailable.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient creates a client for the endpoint that accepts {"question": ...}.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		client:   &http.Client{},
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured question endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Ask sends one question and decodes the reply. Every failure, whatever the
// cause, is wrapped in ErrUnavailable.
func (c *Client) Ask(ctx context.Context, question string) (*Answer, error) {
	body, err := json.Marshal(Request{Question: question})
	if err != nil {
		return nil, fmt.Errorf("%w: could not marshal request: %v", app_errors.ErrUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: could not create http request: %v", app_errors.ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: http request failed: %v", app_errors.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: could not read response body: %v", app_errors.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: api returned status %d: %s", app_errors.ErrUnavailable, resp.StatusCode, truncate(string(bodyBytes), 200))
	}

	var wire wireAnswer
	if err := json.Unmarshal(bodyBytes, &wire); err != nil {
		return nil, fmt.Errorf("%w: could not decode response: %v", app_errors.ErrUnavailable, err)
	}
	if wire.Answer == nil {
		return nil, fmt.Errorf("%w: response has no answer field", app_errors.ErrUnavailable)
	}

	answer := &Answer{Text: *wire.Answer}
	if len(wire.Sources) > 0 {
		answer.Sources = wire.Sources
	}
	return answer, nil
}

// Health performs a GET on the backend root, where the service publishes its
// status document. It is informational only.
func (c *Client) Health(ctx context.Context) error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	root := url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, root.String(), nil)
	if err != nil {
		return fmt.Errorf("could not create health request: %w", err)
	}
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: health check failed: %v", app_errors.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health check returned status %d", app_errors.ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
