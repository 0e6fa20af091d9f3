package reve_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reve "github.com/dpaluy/reve-ai"
)

// TestNewClient_NoCredential tests that construction fails fast with a
// ConfigurationError when no API key resolves from anywhere.
func TestNewClient_NoCredential(t *testing.T) {
	t.Setenv(reve.EnvAPIKey, "")
	reve.ResetConfig()

	client, err := reve.NewClient()

	assert.Nil(t, client)
	var configErr *reve.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, configErr.Message, reve.EnvAPIKey)
}

// TestNewClient_CredentialFromEnv tests the environment variable
// default.
func TestNewClient_CredentialFromEnv(t *testing.T) {
	t.Setenv(reve.EnvAPIKey, "env-key")
	reve.ResetConfig()

	client, err := reve.NewClient()

	require.NoError(t, err)
	assert.Equal(t, "env-key", client.Config().APIKey)
}

// TestNewClient_Defaults tests the documented default configuration.
func TestNewClient_Defaults(t *testing.T) {
	t.Setenv(reve.EnvAPIKey, "env-key")
	reve.ResetConfig()

	client, err := reve.NewClient()
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, reve.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.False(t, cfg.Debug)
}

// TestNewClient_OptionPrecedence tests that explicit options win over
// both the environment and the process-wide configuration.
func TestNewClient_OptionPrecedence(t *testing.T) {
	t.Setenv(reve.EnvAPIKey, "env-key")

	globalCfg := reve.NewConfig()
	globalCfg.APIKey = "global-key"
	globalCfg.MaxRetries = 7
	reve.Configure(globalCfg)
	t.Cleanup(reve.ResetConfig)

	client, err := reve.NewClient(
		reve.WithAPIKey("option-key"),
		reve.WithBaseURL("https://staging.reve.invalid"),
		reve.WithRequestTimeout(time.Minute),
		reve.WithConnectTimeout(5*time.Second),
		reve.WithLogger(zerolog.Nop()),
		reve.WithDebug(true),
	)
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, "option-key", cfg.APIKey)
	assert.Equal(t, "https://staging.reve.invalid", cfg.BaseURL)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 7, cfg.MaxRetries, "unset options inherit the configured value")
	assert.True(t, cfg.Debug)
}

// TestConfigure_GlobalDefault tests the process-wide configuration
// holder: Configure installs, DefaultConfig reads, ResetConfig clears.
func TestConfigure_GlobalDefault(t *testing.T) {
	t.Setenv(reve.EnvAPIKey, "")
	reve.ResetConfig()

	_, ok := reve.DefaultConfig()
	assert.False(t, ok)

	cfg := reve.NewConfig()
	cfg.APIKey = "global-key"
	reve.Configure(cfg)
	t.Cleanup(reve.ResetConfig)

	got, ok := reve.DefaultConfig()
	require.True(t, ok)
	assert.Equal(t, "global-key", got.APIKey)

	client, err := reve.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "global-key", client.Config().APIKey)

	reve.ResetConfig()
	_, ok = reve.DefaultConfig()
	assert.False(t, ok)

	_, err = reve.NewClient()
	var configErr *reve.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

// TestConfig_Valid tests the credential invariant.
func TestConfig_Valid(t *testing.T) {
	cfg := reve.Config{}
	assert.False(t, cfg.Valid())

	cfg.APIKey = "k"
	assert.True(t, cfg.Valid())
}

// TestWithHTTPClient tests that a custom HTTP client is used as-is.
func TestWithHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mustEncode(w, map[string]interface{}{"image": "x"})
	}))
	defer server.Close()

	custom := &http.Client{Timeout: time.Second}
	client, err := reve.NewClient(
		reve.WithAPIKey("test-key"),
		reve.WithBaseURL(server.URL),
		reve.WithHTTPClient(custom),
	)
	require.NoError(t, err)

	_, err = client.Create(context.Background(), &reve.CreateRequest{Prompt: "A sunset"})
	require.NoError(t, err)
}

// TestDebugLogging tests that debug mode emits transport events
// through the configured logger.
func TestDebugLogging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mustEncode(w, map[string]interface{}{"image": "x"})
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	client := newTestClient(t, server.URL,
		reve.WithLogger(logger),
		reve.WithDebug(true),
	)
	_, err := client.Create(context.Background(), &reve.CreateRequest{Prompt: "A sunset"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "reve request")
	assert.Contains(t, out, "reve response")
	assert.Contains(t, out, "/v1/image/create")
}
