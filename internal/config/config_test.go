package config_test

import (
	"testing"
	"time"

	"github.com/mukulkathayat/linkedin-mcp/httpclient"
	"github.com/mukulkathayat/linkedin-mcp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests here use t.Setenv and cannot run in parallel.

func TestNew_Defaults(t *testing.T) {
	t.Setenv("LINKEDIN_API_KEY", "")
	t.Setenv("LINKEDIN_API_USER", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "0.0.0.0", cfg.HTTPServerHost)
	assert.Equal(t, 8000, cfg.HTTPServerPort)
	assert.True(t, cfg.HTTPEnableCORS)
	assert.Equal(t, []string{"*"}, cfg.HTTPAllowOrigins)
	assert.Equal(t, "LinkedInProfiler", cfg.MCPServerName)
	assert.True(t, cfg.MCPEnableSSE)
	assert.True(t, cfg.MetricServerEnabled)
	assert.Zero(t, cfg.LinkedInAPITimeout)
	assert.Equal(t, "https://linkedin-data-scraper.p.rapidapi.com", cfg.BaseURL())
	assert.False(t, cfg.HasCredentials())
}

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("LINKEDIN_API_KEY", "key")
	t.Setenv("LINKEDIN_API_HOST", "example.p.rapidapi.com")
	t.Setenv("LINKEDIN_API_USER", "user")
	t.Setenv("LINKEDIN_API_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("LINKEDIN_API_TIMEOUT", "15s")
	t.Setenv("PORT", "8123")
	t.Setenv("HTTP_ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MCP_ENABLE_SSE", "false")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.HTTPServerPort)
	assert.Equal(t, 15*time.Second, cfg.LinkedInAPITimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTPAllowOrigins)
	assert.False(t, cfg.MCPEnableSSE)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.BaseURL())
	assert.True(t, cfg.HasCredentials())
	assert.Equal(t, httpclient.Credentials{
		APIKey:  "key",
		APIHost: "example.p.rapidapi.com",
		APIUser: "user",
	}, cfg.Credentials())
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "unparseable port", key: "PORT", value: "eighty"},
		{name: "bad log format", key: "LOG_FORMAT", value: "xml"},
		{name: "bad log level", key: "LOG_LEVEL", value: "loud"},
		{name: "bad base url", key: "LINKEDIN_API_BASE_URL", value: "not a url"},
		{name: "bad host", key: "HOST", value: "not a host"},
		{name: "negative timeout", key: "LINKEDIN_API_TIMEOUT", value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.New()
			require.Error(t, err)
		})
	}
}
