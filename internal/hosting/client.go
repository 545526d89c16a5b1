// Package hosting implements the REST client for the HostFleet provider API.
// Each exported method performs exactly one HTTP call. Failed calls are
// classified into domain errors at the point of failure; successful bodies are
// shape-checked before they are trusted.
package hosting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/hostfleet/hostmcp/internal/errors"
)

const (
	// DefaultBaseURL is the production endpoint for the provider API.
	DefaultBaseURL = "https://api.hostfleet.io/v2"

	// DefaultTimeout bounds every outbound call. Expiry surfaces as a
	// TIMEOUT_ERROR domain error.
	DefaultTimeout = 30 * time.Second
)

// Client talks to the provider API. It holds no per-call state and is safe
// for concurrent use; any concurrency limit is the caller's concern.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Mostly useful in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout overrides the per-call timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a provider API client. baseURL falls back to DefaultBaseURL
// when empty; the API key is sent as a bearer token on every request.
func New(logger hclog.Logger, baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid provider base URL '%s': %w", baseURL, err)
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger.Named("hosting"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

// BaseURL returns the configured provider endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one HTTP call and returns the raw response body. Any failure,
// transport-level or a non-2xx response, is returned as a domain error via
// errors.Classify; callers never see a raw transport error.
func (c *Client) do(ctx context.Context, method, path, op string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Classify(op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Classify(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Provider API request", "operation", op, "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		domainErr := errors.Classify(op, err)
		c.logger.Error("Provider API request failed", "operation", op, "code", domainErr.Code(), "error", domainErr)
		return nil, domainErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Classify(op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		domainErr := errors.Classify(op, statusError(resp.StatusCode, body))
		c.logger.Warn("Provider API returned error status",
			"operation", op,
			"status", resp.StatusCode,
			"code", domainErr.Code(),
		)
		return nil, domainErr
	}

	return body, nil
}

// statusError builds the transport failure for a non-2xx response, pulling
// the provider's own message out of the body when one exists.
func statusError(status int, body []byte) *errors.StatusError {
	se := &errors.StatusError{
		Status:     status,
		StatusText: http.StatusText(status),
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		se.Message = payload.Message
	}

	return se
}

// getObject fetches an object-shaped response, validates its shape,
// and decodes it into out.
func (c *Client) getObject(ctx context.Context, path, op string, out any) error {
	return c.object(ctx, http.MethodGet, path, op, nil, out)
}

// postObject issues a write and treats the response like getObject does.
func (c *Client) postObject(ctx context.Context, path, op string, payload, out any) error {
	return c.object(ctx, http.MethodPost, path, op, payload, out)
}

func (c *Client) object(ctx context.Context, method, path, op string, payload, out any) error {
	body, err := c.do(ctx, method, path, op, payload)
	if err != nil {
		return err
	}

	var shape map[string]any
	if err := json.Unmarshal(body, &shape); err != nil {
		return errors.Classify(op, err)
	}
	if err := ValidateResponse(op, shape); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Classify(op, err)
		}
	}
	return nil
}

// getList fetches an array-shaped response. The object shape check does not
// apply; a decode failure still degrades to a domain error.
func (c *Client) getList(ctx context.Context, path, op string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, op, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Classify(op, err)
	}
	return nil
}
