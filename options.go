package reve

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API key, overriding the environment variable and
// any process-wide configuration.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.cfg.APIKey = key
	}
}

// WithBaseURL sets the API endpoint. Useful for testing against a mock
// server or routing through a proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.cfg.BaseURL = baseURL
	}
}

// WithRequestTimeout sets the per-request timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.cfg.RequestTimeout = d
	}
}

// WithConnectTimeout sets the connection-establishment timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.cfg.ConnectTimeout = d
	}
}

// WithRetries sets the maximum number of retries for transient HTTP
// failures. Zero disables retries.
func WithRetries(n int) Option {
	return func(c *Client) {
		c.cfg.MaxRetries = n
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.cfg.Logger = logger
	}
}

// WithDebug enables transport-level request/response logging through
// the configured logger.
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.cfg.Debug = enabled
	}
}

// WithHTTPClient sets a custom HTTP client. When supplied, the
// timeout-related configuration fields are ignored; the custom client
// is used as-is.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}
