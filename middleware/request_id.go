package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RequestIDConfig struct {
	Skipper   middleware.Skipper
	Generator func() string
	// AutoGenerate fills in a missing header instead of rejecting the request.
	AutoGenerate bool
	// ReplaceInvalid swaps a malformed header for a generated id instead of
	// rejecting the request. It only applies with AutoGenerate.
	ReplaceInvalid bool
	Validator      func(string) error
}

// DefaultRequestIDConfig generates ids for callers that do not send one,
// which is the common case for MCP clients.
func DefaultRequestIDConfig() RequestIDConfig {
	return RequestIDConfig{
		Skipper:        middleware.DefaultSkipper,
		Generator:      uuid.NewString,
		AutoGenerate:   true,
		ReplaceInvalid: true,
		Validator:      uuid.Validate,
	}
}

func RequestID(skipper middleware.Skipper) echo.MiddlewareFunc {
	config := DefaultRequestIDConfig()
	config.Skipper = skipper

	return RequestIDWithConfig(config)
}

func RequestIDWithConfig(config RequestIDConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	if config.Generator == nil {
		config.Generator = uuid.NewString
	}

	if config.Validator == nil {
		config.Validator = uuid.Validate
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if config.Skipper(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			rid := strings.TrimSpace(req.Header.Get(HeaderXRequestID))

			switch {
			case rid == "" && !config.AutoGenerate:
				return echo.NewHTTPError(
					http.StatusBadRequest,
					fmt.Sprint("missing required header: ", HeaderXRequestID),
				)
			case rid == "":
				rid = config.Generator()
				req.Header.Set(HeaderXRequestID, rid)
			case config.Validator(rid) != nil:
				if !config.AutoGenerate || !config.ReplaceInvalid {
					return echo.NewHTTPError(
						http.StatusBadRequest,
						fmt.Sprintf("invalid %s: must be a valid UUID", HeaderXRequestID),
					)
				}

				rid = config.Generator()
				req.Header.Set(HeaderXRequestID, rid)
			}

			ctx.Response().Header().Set(HeaderXRequestID, rid)
			ctx.Set(ContextKeyRequestID, rid)

			return next(ctx)
		}
	}
}
