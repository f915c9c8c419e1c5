// Package n2yo provides a typed client for the N2YO satellite tracking API.
package n2yo

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/skytrack/skytrack-mcp/pkg/logging"
	"github.com/skytrack/skytrack-mcp/pkg/metrics"
	"github.com/skytrack/skytrack-mcp/pkg/retry"
)

const (
	// DefaultBaseURL is the N2YO REST API root for satellite queries.
	DefaultBaseURL = "https://api.n2yo.com/rest/v1/satellite"

	// DefaultTimeout is the maximum time to wait for one upstream attempt.
	DefaultTimeout = 10 * time.Second

	// maxErrorBodyBytes bounds how much of an error response body is kept
	// for diagnostics.
	maxErrorBodyBytes = 4096
)

// Client provides access to the N2YO API. It holds no mutable state, so
// concurrent calls are independent; the only internal loop is the bounded
// rate-limit retry inside execute.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retryCfg   *retry.Config
	metrics    *metrics.Upstream
	logger     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream base URL. Used for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRetryConfig replaces the rate-limit backoff schedule.
func WithRetryConfig(cfg *retry.Config) Option {
	return func(c *Client) {
		if cfg != nil {
			c.retryCfg = cfg
		}
	}
}

// WithMetrics attaches upstream request metrics.
func WithMetrics(m *metrics.Upstream) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates an N2YO client. The API key is required; without one every
// request would be rejected upstream, so construction fails immediately
// with a configuration error.
func New(apiKey string, logger *zap.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, newError(KindConfiguration, "N2YO API key is not configured", nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retryCfg: retry.DefaultConfig(),
		logger:   logger.Named("n2yo"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// execute performs one logical upstream query, retrying rate-limited
// attempts per the backoff schedule and returning the raw response body.
//
// N2YO expects the API key appended after the last path segment with an
// ampersand marker rather than as a regular query string. The URL is built
// by plain concatenation so that placement is preserved exactly.
func (c *Client) execute(ctx context.Context, endpoint, path string) ([]byte, error) {
	requestURL := c.baseURL + path + "&apiKey=" + c.apiKey

	c.logger.Debug("upstream request",
		zap.String("endpoint", endpoint),
		zap.String("url", logging.RedactURL(requestURL)))

	return retry.DoWithResult(ctx, c.retryCfg, func() ([]byte, error) {
		return c.attempt(ctx, endpoint, requestURL)
	})
}

// attempt sends a single request and classifies the outcome.
func (c *Client) attempt(ctx context.Context, endpoint, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, newError(KindNetwork, "failed to build upstream request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(endpoint, string(KindNetwork), time.Since(start))
		return nil, newError(KindNetwork, "no response from upstream", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveRequest(endpoint, string(KindNetwork), time.Since(start))
		return nil, newError(KindNetwork, "failed to read upstream response", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.metrics.ObserveRequest(endpoint, string(KindRateLimited), time.Since(start))
		c.metrics.IncRateLimited(endpoint)
		c.logger.Warn("upstream rate limited",
			zap.String("endpoint", endpoint))
		return nil, &Error{
			Kind:       KindRateLimited,
			Message:    "upstream rate limit exceeded",
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.metrics.ObserveRequest(endpoint, string(KindInvalidCredential), time.Since(start))
		return nil, &Error{
			Kind:       KindInvalidCredential,
			Message:    "upstream rejected the API key",
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.metrics.ObserveRequest(endpoint, string(KindUpstream), time.Since(start))
		return nil, &Error{
			Kind:       KindUpstream,
			Message:    "upstream returned an unexpected status",
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
	}

	c.metrics.ObserveRequest(endpoint, "success", time.Since(start))
	return body, nil
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		return string(body[:maxErrorBodyBytes]) + "..."
	}
	return string(body)
}
