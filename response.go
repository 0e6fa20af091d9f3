package reve

import (
	"net/http"
	"strconv"
)

// Response header names used for body-field fallbacks.
const (
	headerRequestID        = "x-reve-request-id"
	headerVersion          = "x-reve-version"
	headerContentViolation = "x-reve-content-violation"
	headerCreditsUsed      = "x-reve-credits-used"
	headerCreditsRemaining = "x-reve-credits-remaining"
)

// Response is a read-only view over a completed HTTP exchange.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// Headers are the response headers.
	Headers http.Header

	// Body is the parsed JSON response body. An empty response body
	// yields an empty map; a malformed one is kept verbatim under a
	// single "raw" key.
	Body map[string]any
}

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r.Status >= 200 && r.Status <= 299
}

// RequestID returns the request identifier from the body's
// "request_id" field, falling back to the x-reve-request-id header.
func (r *Response) RequestID() string {
	if id, ok := r.Body["request_id"].(string); ok && id != "" {
		return id
	}
	return r.Headers.Get(headerRequestID)
}

func (r *Response) bodyString(key string) string {
	s, _ := r.Body[key].(string)
	return s
}

// intField reads an integer body field, falling back to parsing the
// given header. JSON numbers arrive as float64.
func (r *Response) intField(key, header string) int {
	switch v := r.Body[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	if n, err := strconv.Atoi(r.Headers.Get(header)); err == nil {
		return n
	}
	return 0
}

// ImageResponse is the result of an image operation.
//
// The generated image itself is returned base64-encoded; decode it with
// encoding/base64 to recover the PNG bytes:
//
//	png, err := base64.StdEncoding.DecodeString(resp.Image())
type ImageResponse struct {
	Response
}

// Image returns the base64-encoded PNG payload.
func (r *ImageResponse) Image() string {
	return r.bodyString("image")
}

// Base64 returns the base64-encoded PNG payload. It is an alias for
// [ImageResponse.Image].
func (r *ImageResponse) Base64() string {
	return r.Image()
}

// Version returns the model version that produced the image, from the
// body's "version" field, falling back to the x-reve-version header.
func (r *ImageResponse) Version() string {
	if v := r.bodyString("version"); v != "" {
		return v
	}
	return r.Headers.Get(headerVersion)
}

// ContentViolation reports whether the generated content was flagged by
// moderation, from the body's "content_violation" field or the
// x-reve-content-violation header.
func (r *ImageResponse) ContentViolation() bool {
	if flagged, ok := r.Body["content_violation"].(bool); ok && flagged {
		return true
	}
	return r.Headers.Get(headerContentViolation) == "true"
}

// CreditsUsed returns the credits consumed by this request.
func (r *ImageResponse) CreditsUsed() int {
	return r.intField("credits_used", headerCreditsUsed)
}

// CreditsRemaining returns the credits left on the account.
func (r *ImageResponse) CreditsRemaining() int {
	return r.intField("credits_remaining", headerCreditsRemaining)
}
