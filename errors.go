package reve

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ConfigurationError reports an unusable client setup, such as a
// missing API key. It is returned by [NewClient] before any network
// activity.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "reve: configuration error: " + e.Message
}

// ValidationError reports request input rejected before any network
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "reve: " + e.Message
}

// NetworkError reports a transport-level failure with no HTTP status
// attached. [TimeoutError] and [ConnectionError] specialize it.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reve: %s: %v", e.Message, e.Cause)
	}
	return "reve: " + e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// TimeoutError reports that a request exceeded a configured timeout.
type TimeoutError struct {
	NetworkError
}

// ConnectionError reports that a connection to the API could not be
// established (refused, reset, or unresolvable host).
type ConnectionError struct {
	NetworkError
}

// APIError reports a non-2xx HTTP response. Status-specific subtypes
// (e.g. [UnauthorizedError], [RateLimitError]) embed it; match the
// subtype with errors.As, or use [AsAPIError] to branch on any of them
// generically.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int

	// Body is the parsed JSON response body. Malformed bodies are kept
	// under a single "raw" key; empty bodies yield an empty map.
	Body map[string]any

	// Headers are the response headers.
	Headers http.Header

	// Message is a human-readable description, taken from the body's
	// "message" field, falling back to "error", then "Unknown error".
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("reve: API error (status %d): %s", e.Status, e.Message)
}

// RequestID returns the request identifier from the x-reve-request-id
// response header, or "" if absent.
func (e *APIError) RequestID() string {
	if e.Headers == nil {
		return ""
	}
	return e.Headers.Get(headerRequestID)
}

// ErrorCode returns the machine-readable code from the body's
// "error_code" field, or "" if absent.
func (e *APIError) ErrorCode() string {
	code, _ := e.Body["error_code"].(string)
	return code
}

func (e *APIError) base() *APIError { return e }

// BadRequestError reports HTTP 400.
type BadRequestError struct {
	APIError
}

// UnauthorizedError reports HTTP 401, typically an invalid API key.
type UnauthorizedError struct {
	APIError
}

// InsufficientCreditsError reports HTTP 402.
type InsufficientCreditsError struct {
	APIError
}

// ForbiddenError reports HTTP 403.
type ForbiddenError struct {
	APIError
}

// NotFoundError reports HTTP 404.
type NotFoundError struct {
	APIError
}

// UnprocessableEntityError reports HTTP 422.
type UnprocessableEntityError struct {
	APIError
}

// RateLimitError reports HTTP 429. The server advises a wait time in
// the Retry-After header, exposed via [RateLimitError.RetryAfter].
type RateLimitError struct {
	APIError
}

// RetryAfter returns the server-advised wait, in seconds, from the
// Retry-After response header, or 0 if the header is absent or not an
// integer.
func (e *RateLimitError) RetryAfter() int {
	if e.Headers == nil {
		return 0
	}
	seconds, err := strconv.Atoi(e.Headers.Get("Retry-After"))
	if err != nil {
		return 0
	}
	return seconds
}

// ServerError reports any HTTP 5xx status.
type ServerError struct {
	APIError
}

// AsAPIError extracts the *APIError carried by err, whether err is a
// generic APIError or any of its status-specific subtypes, unwrapping
// as needed. It returns false for validation, configuration, and
// network errors.
func AsAPIError(err error) (*APIError, bool) {
	type carrier interface {
		base() *APIError
	}
	for ; err != nil; err = errors.Unwrap(err) {
		if c, ok := err.(carrier); ok {
			return c.base(), true
		}
	}
	return nil, false
}

// newAPIError maps a completed non-2xx response to its taxonomy member.
// The mapping is total: unmapped 4xx codes yield a generic *APIError
// and anything >= 500 yields *ServerError.
func newAPIError(status int, body map[string]any, headers http.Header) error {
	base := APIError{
		Status:  status,
		Body:    body,
		Headers: headers,
		Message: messageFromBody(body),
	}
	switch {
	case status == http.StatusBadRequest:
		return &BadRequestError{base}
	case status == http.StatusUnauthorized:
		return &UnauthorizedError{base}
	case status == http.StatusPaymentRequired:
		return &InsufficientCreditsError{base}
	case status == http.StatusForbidden:
		return &ForbiddenError{base}
	case status == http.StatusNotFound:
		return &NotFoundError{base}
	case status == http.StatusUnprocessableEntity:
		return &UnprocessableEntityError{base}
	case status == http.StatusTooManyRequests:
		return &RateLimitError{base}
	case status >= 500:
		return &ServerError{base}
	default:
		return &base
	}
}

func messageFromBody(body map[string]any) string {
	if msg, ok := body["message"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := body["error"].(string); ok && msg != "" {
		return msg
	}
	return "Unknown error"
}
