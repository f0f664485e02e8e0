package httpclient

import (
	"maps"
	"net/http"
	"time"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderRapidAPIHost  = "x-rapidapi-host"
	HeaderRapidAPIKey   = "x-rapidapi-key" //nolint:gosec
	HeaderRapidAPIUser  = "x-rapidapi-user"
	ContentTypeJSON     = "application/json"
	UnknownErrorMessage = "Unknown error"
)

// Credentials are the three static values the RapidAPI gateway expects on
// every request.
type Credentials struct {
	APIKey  string
	APIHost string
	APIUser string
}

func (c Credentials) Headers() map[string]string {
	return map[string]string{
		HeaderRapidAPIHost: c.APIHost,
		HeaderRapidAPIKey:  c.APIKey,
		HeaderRapidAPIUser: c.APIUser,
	}
}

type Option func(*Client)

// WithTimeout sets a client-wide timeout. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

func WithCredentials(creds Credentials) Option {
	return WithDefaultHeaders(creds.Headers())
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}
