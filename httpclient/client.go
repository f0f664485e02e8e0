package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// Client sends one request per call to a single upstream host and folds every
// outcome into a Result. It holds no per-call state.
type Client struct {
	baseURL         string
	httpClient      Doer
	defaultHeaders  map[string]string
	maxResponseSize int64 // 0 means no limit
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{ //nolint:exhaustruct
			Transport: newTransport(),
		},
		defaultHeaders: map[string]string{
			HeaderContentType: ContentTypeJSON,
		},
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// newTransport opens a fresh connection for every request.
func newTransport() *http.Transport {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Transport{DisableKeepAlives: true} //nolint:exhaustruct
	}

	cloned := transport.Clone()
	cloned.DisableKeepAlives = true

	return cloned
}

func (c *Client) Get(ctx context.Context, target string) Result {
	return c.Send(ctx, http.MethodGet, target, nil)
}

func (c *Client) Post(ctx context.Context, target string, body any) Result {
	return c.Send(ctx, http.MethodPost, target, body)
}

// Send performs a single request. target is relative to the base URL and may
// already carry an encoded query string. A nil body sends no payload.
func (c *Client) Send(ctx context.Context, method, target string, body any) Result {
	start := time.Now()

	req, err := c.buildRequest(ctx, method, target, body)
	if err != nil {
		return Fail(NewTransportFailure(err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().
			Err(err).
			Str("method", method).
			Str("target", target).
			Dur("latency", time.Since(start)).
			Msg("Upstream request failed before a response was received")

		return Fail(NewTransportFailure(fmt.Errorf("%w: %w", ErrRequestFailed, err)))
	}
	defer resp.Body.Close()

	result := c.handleResponse(resp)

	log.Debug().
		Str("method", method).
		Str("target", target).
		Int("status", resp.StatusCode).
		Bool("ok", result.OK()).
		Dur("latency", time.Since(start)).
		Msg("Upstream request completed")

	return result
}

func (c *Client) buildRequest(
	ctx context.Context,
	method string,
	target string,
	body any,
) (*http.Request, error) {
	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(target), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}

	return req, nil
}

func (c *Client) handleResponse(resp *http.Response) Result {
	bodyBytes, err := c.readBody(resp.Body)
	if err != nil {
		return Fail(NewTransportFailure(err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return Fail(NewStatusFailure(resp.StatusCode, bodyBytes))
	}

	if !json.Valid(bodyBytes) {
		return Fail(NewDecodeFailure(resp.StatusCode, bodyBytes))
	}

	return Success(bodyBytes)
}

func (c *Client) readBody(body io.Reader) ([]byte, error) {
	if c.maxResponseSize > 0 {
		body = io.LimitReader(body, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadResponse, err)
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return bodyBytes, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildURL(target string) string {
	if target != "" && !strings.HasPrefix(target, "/") {
		target = "/" + target
	}

	return c.baseURL + target
}
