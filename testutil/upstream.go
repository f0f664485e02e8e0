package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RecordedRequest is what the fake upstream saw for one call.
type RecordedRequest struct {
	Method  string
	URI     string
	Body    string
	Headers http.Header
}

// Upstream is a fake LinkedIn data API that answers every request with a
// fixed status and payload and records what it received.
type Upstream struct {
	mu       sync.Mutex
	requests []RecordedRequest
	status   int
	payload  string
	server   *httptest.Server
}

func NewUpstream(t *testing.T, status int, payload string) *Upstream {
	t.Helper()

	upstream := &Upstream{ //nolint:exhaustruct
		status:  status,
		payload: payload,
	}
	upstream.server = httptest.NewServer(http.HandlerFunc(upstream.serve))
	t.Cleanup(upstream.server.Close)

	return upstream
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	u.mu.Lock()
	u.requests = append(u.requests, RecordedRequest{
		Method:  r.Method,
		URI:     r.URL.RequestURI(),
		Body:    string(body),
		Headers: r.Header.Clone(),
	})
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(u.status)
	_, _ = io.WriteString(w, u.payload)
}

func (u *Upstream) URL() string {
	return u.server.URL
}

func (u *Upstream) Requests() []RecordedRequest {
	u.mu.Lock()
	defer u.mu.Unlock()

	return append([]RecordedRequest(nil), u.requests...)
}

func (u *Upstream) Last(t *testing.T) RecordedRequest {
	t.Helper()

	requests := u.Requests()
	require.NotEmpty(t, requests, "upstream received no requests")

	return requests[len(requests)-1]
}

// UnreachableURL returns the address of a server that has already shut down.
func UnreachableURL(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	return srv.URL
}
