package httpserver

import (
	"net/http"
	"reflect"
	"runtime"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mukulkathayat/linkedin-mcp/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Wrapper binds and validates TREQ, runs the handler and writes its result as
// JSON. Handler errors go to the echo error handler unchanged.
func Wrapper[TREQ any](wrapped func(echo.Context, *TREQ) (any, *echo.HTTPError)) echo.HandlerFunc {
	handlerName := shortName(runtime.FuncForPC(reflect.ValueOf(wrapped).Pointer()).Name())

	return func(ectx echo.Context) error {
		requestURI := ectx.Request().RequestURI
		logger := log.With().
			Str("request_id", middleware.GetRequestID(ectx)).
			Str("handler", handlerName).
			Logger()

		ectx.Set(middleware.ContextKeyHandler, handlerName)

		logger.Debug().
			Str("path", requestURI).
			Msg("request started - processing incoming request")

		req, httpErr := bindAndValidate[TREQ](ectx, logger, requestURI)
		if httpErr != nil {
			return httpErr
		}

		ectx.Set(middleware.ContextKeyBody, req)

		res, httpErr := wrapped(ectx, req)
		if httpErr != nil {
			return httpErr
		}

		status := ectx.Response().Status
		if status == 0 {
			status = http.StatusOK
		}

		logger.Debug().
			Int("status", status).
			Msg("request completed - response sent to client")

		return ectx.JSON(status, res)
	}
}

// shortName trims the package path and method-value suffix from a function name.
func shortName(name string) string {
	name = strings.TrimSuffix(name, "-fm")

	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}

	return name
}

func bindAndValidate[TREQ any](ectx echo.Context, logger zerolog.Logger, path string) (*TREQ, *echo.HTTPError) {
	var req TREQ

	if err := ectx.Bind(&req); err != nil {
		logger.Warn().
			Err(err).
			Str("path", path).
			Msg("failed to bind request body to the expected structure")

		return nil, HTTPError(http.StatusBadRequest, err)
	}

	if err := ectx.Validate(&req); err != nil {
		logger.Warn().
			Err(err).
			Str("path", path).
			Msg("request validation failed")

		return nil, HTTPError(http.StatusBadRequest, err)
	}

	return &req, nil
}
