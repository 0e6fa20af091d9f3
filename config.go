package reve

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Reve API endpoint.
	DefaultBaseURL = "https://api.reve.com"

	// DefaultRequestTimeout bounds a single HTTP request, including
	// reading the full response body.
	DefaultRequestTimeout = 120 * time.Second

	// DefaultConnectTimeout bounds establishing a TCP connection.
	DefaultConnectTimeout = 30 * time.Second

	// DefaultMaxRetries is the number of automatic retries applied to
	// rate-limited and server-error responses.
	DefaultMaxRetries = 2

	// EnvAPIKey is the environment variable consulted for the API key
	// when none is supplied explicitly.
	EnvAPIKey = "REVE_API_KEY"
)

const (
	// MaxPromptLength is the maximum length, in characters, of a prompt
	// or edit instruction.
	MaxPromptLength = 2560

	// MaxReferenceImages is the maximum number of reference images
	// accepted by [Client.Remix].
	MaxReferenceImages = 6
)

// AspectRatios lists the aspect-ratio tokens accepted by the API.
var AspectRatios = []string{"16:9", "9:16", "3:2", "2:3", "4:3", "3:4", "1:1"}

// Config holds the connection parameters for a [Client].
//
// A Config is resolved once at client construction from defaults, the
// environment, the process-wide configuration (see [Configure]), and
// per-client options, in that order. It is not mutated afterwards.
type Config struct {
	// APIKey is the bearer token sent on every request. Required.
	APIKey string

	// BaseURL is the API endpoint. Defaults to [DefaultBaseURL].
	BaseURL string

	// RequestTimeout bounds each HTTP attempt end to end.
	RequestTimeout time.Duration

	// ConnectTimeout bounds connection establishment.
	ConnectTimeout time.Duration

	// MaxRetries is the retry budget for transient HTTP failures
	// (429, 500, 502, 503, 504). Zero disables retries.
	MaxRetries int

	// Logger receives transport-level debug events when Debug is set.
	Logger zerolog.Logger

	// Debug enables request/response logging through Logger.
	Debug bool
}

// NewConfig returns a Config populated with defaults. The API key is
// read from the REVE_API_KEY environment variable if set.
func NewConfig() Config {
	return Config{
		APIKey:         os.Getenv(EnvAPIKey),
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		MaxRetries:     DefaultMaxRetries,
		Logger:         zerolog.Nop(),
	}
}

// Valid reports whether the configuration can be used to build a
// client. Only the API key is required; everything else has defaults.
func (c Config) Valid() bool {
	return c.APIKey != ""
}

// Process-wide default configuration. Guarded by defaultMu; expected to
// be written once during startup and read by NewClient.
var (
	defaultMu     sync.RWMutex
	defaultConfig *Config
)

// Configure installs cfg as the process-wide default configuration used
// by [NewClient] when no overriding options are given. Call it once
// during program startup, before creating clients.
func Configure(cfg Config) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig = &cfg
}

// DefaultConfig returns the process-wide default configuration, if one
// has been installed with [Configure].
func DefaultConfig() (Config, bool) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultConfig == nil {
		return Config{}, false
	}
	return *defaultConfig, true
}

// ResetConfig clears the process-wide default configuration.
func ResetConfig() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig = nil
}
