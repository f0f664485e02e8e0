package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mukulkathayat/linkedin-mcp/middleware"
	"github.com/mukulkathayat/linkedin-mcp/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream unavailable")

func TestErrorHandler_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *echo.HTTPError
		status  int
		message string
	}{
		{name: "bad request", err: echo.NewHTTPError(http.StatusBadRequest, "bad input"), status: http.StatusBadRequest, message: "bad input"},
		{name: "not found", err: echo.NewHTTPError(http.StatusNotFound, "tool not found"), status: http.StatusNotFound, message: "tool not found"},
		{name: "server error", err: echo.NewHTTPError(http.StatusInternalServerError, "boom"), status: http.StatusInternalServerError, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, rec, _ := testutil.SetupEchoContextWithJSON(t, http.MethodGet, "/", nil)

			middleware.ErrorHandler(nil)(tt.err, ctx)

			var body map[string]any
			testutil.AssertStatusCode(t, rec, tt.status)
			testutil.AssertJSONResponse(t, rec, &body)
			assert.Equal(t, tt.message, body["message"])
			assert.NotContains(t, body, "internal")
		})
	}
}

func TestErrorHandler_HeadRequestHasNoBody(t *testing.T) {
	t.Parallel()

	ctx, rec, _ := testutil.SetupEchoContextWithJSON(t, http.MethodHead, "/", nil)

	middleware.ErrorHandler(nil)(echo.NewHTTPError(http.StatusNotFound, "missing"), ctx)

	testutil.AssertStatusCode(t, rec, http.StatusNotFound)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_GenericErrorGoesToNext(t *testing.T) {
	t.Parallel()

	ctx, rec, _ := testutil.SetupEchoContextWithJSON(t, http.MethodGet, "/", nil)

	var received error

	next := func(err error, c echo.Context) {
		received = err
		_ = c.NoContent(http.StatusTeapot)
	}

	middleware.ErrorHandler(next)(errUpstream, ctx)

	require.ErrorIs(t, received, errUpstream)
	testutil.AssertStatusCode(t, rec, http.StatusTeapot)
}

func TestErrorHandler_IncludesInternalWhenAsked(t *testing.T) {
	t.Parallel()

	ctx, rec, _ := testutil.SetupEchoContextWithJSON(t, http.MethodGet, "/", nil)
	httpErr := echo.NewHTTPError(http.StatusBadGateway, "call failed").WithInternal(errUpstream)

	middleware.ErrorHandler(nil, &middleware.ErrorHandlerConfig{ //nolint:exhaustruct
		IncludeInternalErrors: true,
	})(httpErr, ctx)

	var body map[string]any
	testutil.MustParseJSONResponse(t, rec, &body)
	assert.Equal(t, "call failed", body["message"])
	assert.Equal(t, errUpstream.Error(), body["internal"])
}

func TestErrorHandler_CustomErrorResponse(t *testing.T) {
	t.Parallel()

	ctx, rec, _ := testutil.SetupEchoContextWithJSON(t, http.MethodGet, "/", nil)

	middleware.ErrorHandler(nil, &middleware.ErrorHandlerConfig{ //nolint:exhaustruct
		CustomErrorResponse: func(_ echo.Context, _ error, code int) map[string]any {
			return map[string]any{"code": code}
		},
	})(echo.NewHTTPError(http.StatusForbidden, "nope"), ctx)

	var body map[string]any
	testutil.MustParseJSONResponse(t, rec, &body)
	assert.InDelta(t, http.StatusForbidden, body["code"], 0)
}

func TestErrorHandler_LogsWithRequestContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := zerolog.New(&buf)

	ctx, _, _ := testutil.SetupEchoContextWithJSON(t, http.MethodPost, "/v1/tools/person", nil)
	ctx.Set(middleware.ContextKeyRequestID, "req-42")
	ctx.Set(middleware.ContextKeyTool, "person")

	middleware.ErrorHandler(nil, &middleware.ErrorHandlerConfig{ //nolint:exhaustruct
		Logger:    &logger,
		LogErrors: true,
	})(echo.NewHTTPError(http.StatusInternalServerError, "boom").WithInternal(errUpstream), ctx)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"tool":"person"`)
	assert.Contains(t, out, errUpstream.Error())
}

func TestErrorHandler_SkipsCommittedResponses(t *testing.T) {
	t.Parallel()

	ctx, rec, _ := testutil.SetupEchoContextWithJSON(t, http.MethodGet, "/", nil)
	require.NoError(t, ctx.String(http.StatusOK, "done"))

	middleware.ErrorHandler(nil)(echo.NewHTTPError(http.StatusBadRequest, "late"), ctx)

	testutil.AssertResponseBody(t, rec, "done")
}
