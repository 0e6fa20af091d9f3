package reve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxResponseBodySize limits how much of a response body is read. This
// protects against misconfigured servers streaming unbounded data; a
// base64 PNG fits comfortably within it.
const maxResponseBodySize = 64 << 20 // 64MB

// retryInitialInterval is the backoff delay before the first retry;
// subsequent delays double.
const retryInitialInterval = 500 * time.Millisecond

// retryableStatus holds the HTTP statuses that trigger an automatic
// retry of a POST request.
var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// newHTTPClient builds the transport for a client from its resolved
// configuration.
func newHTTPClient(cfg Config) *http.Client {
	return &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: cfg.ConnectTimeout,
			}).DialContext,
		},
	}
}

// post issues a JSON POST to the given API path and returns the
// completed 2xx response. Transient failures (429 and 5xx gateway
// statuses) are retried with exponential backoff up to the configured
// budget; everything else fails immediately with a taxonomy error.
func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &ValidationError{Message: "request body is not serializable: " + err.Error()}
	}
	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	var resp *Response
	attempt := func() error {
		r, err := c.doPost(ctx, url, payload)
		if err != nil {
			return backoff.Permanent(err)
		}
		if r.Success() {
			resp = r
			return nil
		}
		apiErr := newAPIError(r.Status, r.Body, r.Headers)
		if retryableStatus[r.Status] {
			return apiErr
		}
		return backoff.Permanent(apiErr)
	}

	// A negative retry count would wrap around in the uint64
	// conversion and retry without bound; treat it as zero.
	retries := max(c.cfg.MaxRetries, 0)

	err = backoff.Retry(attempt, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(retries)), ctx))
	if err != nil {
		// Context expiry during a backoff sleep surfaces the bare
		// context error; fold it into the taxonomy like any other
		// transport failure.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, classifyTransportError(err)
		}
		return nil, err
	}
	return resp, nil
}

// doPost performs a single HTTP attempt.
func (c *Client) doPost(ctx context.Context, url string, payload []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &NetworkError{Message: "building request failed", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())

	if c.cfg.Debug {
		c.cfg.Logger.Debug().
			Str("method", http.MethodPost).
			Str("url", url).
			Int("body_bytes", len(payload)).
			Msg("reve request")
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBodySize))
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if c.cfg.Debug {
		c.cfg.Logger.Debug().
			Str("url", url).
			Int("status", httpResp.StatusCode).
			Int("body_bytes", len(raw)).
			Str("request_id", httpResp.Header.Get(headerRequestID)).
			Msg("reve response")
	}

	return &Response{
		Status:  httpResp.StatusCode,
		Headers: httpResp.Header,
		Body:    parseBody(raw),
	}, nil
}

// parseBody never fails: empty and JSON-null bodies become an empty
// map, and anything that does not parse as a JSON object is kept
// verbatim under a "raw" key.
func parseBody(raw []byte) map[string]any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}
	}
	var body map[string]any
	if err := json.Unmarshal(trimmed, &body); err != nil || body == nil {
		return map[string]any{"raw": string(raw)}
	}
	return body
}

// classifyTransportError maps a transport failure to its taxonomy
// member, so the underlying net/http error types never leak to
// callers. Connection failures whose text indicates an expired or
// timed-out execution are reported as timeouts.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{NetworkError{Message: "request timed out", Cause: err}}
	}

	msg := err.Error()
	if strings.Contains(msg, "execution expired") || strings.Contains(msg, "timed out") {
		return &TimeoutError{NetworkError{Message: "request timed out", Cause: err}}
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return &ConnectionError{NetworkError{Message: "connection failed", Cause: err}}
	}

	return &NetworkError{Message: "network error", Cause: err}
}
