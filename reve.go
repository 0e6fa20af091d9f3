// Package reve provides a Go SDK for the Reve AI image generation API.
//
// Reve is a text-to-image service. This SDK covers the three image
// operations — create, edit, and remix — and handles authentication,
// input validation, retries, and typed error reporting.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/dpaluy/reve-ai
//
// # Quick Start
//
// Create a client and generate an image:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    reve "github.com/dpaluy/reve-ai"
//	)
//
//	func main() {
//	    // Reads the API key from the REVE_API_KEY environment variable.
//	    client, err := reve.NewClient()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    resp, err := client.Create(context.Background(), &reve.CreateRequest{
//	        Prompt:      "A sunset over snow-capped mountains",
//	        AspectRatio: "16:9",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("got %d base64 bytes, %d credits remaining\n",
//	        len(resp.Image()), resp.CreditsRemaining())
//	}
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client, err := reve.NewClient(
//	    reve.WithAPIKey("your-api-key"),
//	    reve.WithRequestTimeout(3*time.Minute),
//	    reve.WithRetries(5),
//	)
//
// A process-wide default configuration may be installed once at startup
// with [Configure]; per-client options override it. See [Config].
//
// # Error Handling
//
// Failures are reported as typed errors. Validation problems surface as
// [*ValidationError] before any network call; transport problems as
// [*TimeoutError], [*ConnectionError], or [*NetworkError]; HTTP error
// responses as an [*APIError] subtype matching the status code:
//
//	resp, err := client.Create(ctx, req)
//	if err != nil {
//	    var rateLimit *reve.RateLimitError
//	    if errors.As(err, &rateLimit) {
//	        time.Sleep(time.Duration(rateLimit.RetryAfter()) * time.Second)
//	    }
//	    if apiErr, ok := reve.AsAPIError(err); ok {
//	        log.Printf("status=%d request_id=%s", apiErr.Status, apiErr.RequestID())
//	    }
//	}
//
// Responses with status 429, 500, 502, 503, and 504 are retried
// automatically with exponential backoff before an error is returned.
//
// # Thread Safety
//
// A [Client] is safe for concurrent use by multiple goroutines: its
// configuration is immutable after construction and the underlying
// *http.Client pools connections safely across calls.
package reve
