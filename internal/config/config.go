// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mukulkathayat/linkedin-mcp/httpclient"
	"github.com/mukulkathayat/linkedin-mcp/validator"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`

	// LinkedIn data API
	LinkedInAPIKey             string        `env:"LINKEDIN_API_KEY"`
	LinkedInAPIHost            string        `env:"LINKEDIN_API_HOST"              envDefault:"linkedin-data-scraper.p.rapidapi.com" validate:"required,hostname"`
	LinkedInAPIUser            string        `env:"LINKEDIN_API_USER"`
	LinkedInAPIBaseURL         string        `env:"LINKEDIN_API_BASE_URL"                                                            validate:"omitempty,http_url"`
	LinkedInAPITimeout         time.Duration `env:"LINKEDIN_API_TIMEOUT"           envDefault:"0s"                                   validate:"gte=0"`
	LinkedInAPIMaxResponseSize int64         `env:"LINKEDIN_API_MAX_RESPONSE_SIZE" envDefault:"0"                                    validate:"gte=0"`

	// HTTP Server
	HTTPServerHost         string        `env:"HOST"                      envDefault:"0.0.0.0" validate:"required,ip|hostname"`
	HTTPServerPort         int           `env:"PORT"                      envDefault:"8000"    validate:"min=1,max=65535"`
	HTTPEnableCORS         bool          `env:"HTTP_ENABLE_CORS"          envDefault:"true"`
	HTTPAllowOrigins       []string      `env:"HTTP_ALLOW_ORIGINS"        envDefault:"*"       envSeparator:","`
	HTTPBodyLimit          string        `env:"HTTP_BODY_LIMIT"           envDefault:"10M"`
	HTTPServerReadTimeout  time.Duration `env:"HTTP_SERVER_READ_TIMEOUT"  envDefault:"30s"`
	HTTPServerWriteTimeout time.Duration `env:"HTTP_SERVER_WRITE_TIMEOUT" envDefault:"0s"`

	// MCP
	MCPServerName    string `env:"MCP_SERVER_NAME"    envDefault:"LinkedInProfiler" validate:"required"`
	MCPServerVersion string `env:"MCP_SERVER_VERSION" envDefault:"1.0.0"            validate:"required"`
	MCPEnableSSE     bool   `env:"MCP_ENABLE_SSE"     envDefault:"true"`

	// Metric Server
	MetricServerEnabled      bool          `env:"METRIC_SERVER_ENABLED"       envDefault:"true"`
	MetricServerHost         string        `env:"METRIC_SERVER_HOST"          envDefault:"0.0.0.0" validate:"required,ip|hostname"`
	MetricServerPort         int           `env:"METRIC_SERVER_PORT"          envDefault:"9090"    validate:"min=1,max=65535"`
	MetricServerReadTimeout  time.Duration `env:"METRIC_SERVER_READ_TIMEOUT"  envDefault:"10s"`
	MetricServerWriteTimeout time.Duration `env:"METRIC_SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// Graceful Shutdown
	GracefulShutdownPeriod time.Duration `env:"GRACEFUL_SHUTDOWN_PERIOD" envDefault:"10s"`
}

func New() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !cfg.HasCredentials() {
		log.Warn().
			Bool("api_key_set", cfg.LinkedInAPIKey != "").
			Bool("api_user_set", cfg.LinkedInAPIUser != "").
			Msg("LinkedIn API credentials are incomplete, upstream calls will be rejected")
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.DefaultRestValidator().Validate(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func (c *Config) HasCredentials() bool {
	return c.LinkedInAPIKey != "" && c.LinkedInAPIHost != "" && c.LinkedInAPIUser != ""
}

func (c *Config) Credentials() httpclient.Credentials {
	return httpclient.Credentials{
		APIKey:  c.LinkedInAPIKey,
		APIHost: c.LinkedInAPIHost,
		APIUser: c.LinkedInAPIUser,
	}
}

// BaseURL is the override when set, otherwise https on the API host.
func (c *Config) BaseURL() string {
	if c.LinkedInAPIBaseURL != "" {
		return c.LinkedInAPIBaseURL
	}

	return "https://" + c.LinkedInAPIHost
}
