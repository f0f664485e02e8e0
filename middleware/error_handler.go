package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ErrorHandlerConfig struct {
	Logger                *zerolog.Logger
	LogErrors             bool
	IncludeInternalErrors bool
	CustomErrorResponse   func(echo.Context, error, int) map[string]any
}

// ErrorHandler renders *echo.HTTPError values as {"message": ...} and hands
// everything else to next.
func ErrorHandler(next echo.HTTPErrorHandler, config ...*ErrorHandlerConfig) echo.HTTPErrorHandler {
	cfg := getErrorHandlerConfig(config)

	return func(err error, ectx echo.Context) {
		if ectx.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			handleHTTPError(ectx, httpErr, cfg)

			return
		}

		if cfg.LogErrors && cfg.Logger != nil {
			logError(ectx, err, cfg.Logger)
		}

		if next != nil {
			next(err, ectx)
		}
	}
}

func getErrorHandlerConfig(config []*ErrorHandlerConfig) *ErrorHandlerConfig {
	if len(config) > 0 && config[0] != nil {
		return config[0]
	}

	return &ErrorHandlerConfig{} //nolint:exhaustruct
}

func handleHTTPError(ectx echo.Context, httpErr *echo.HTTPError, cfg *ErrorHandlerConfig) {
	if cfg.LogErrors && cfg.Logger != nil {
		logHTTPError(ectx, httpErr, cfg.Logger)
	}

	var response map[string]any
	if cfg.CustomErrorResponse != nil {
		response = cfg.CustomErrorResponse(ectx, httpErr, httpErr.Code)
	} else {
		response = buildErrorResponse(httpErr, cfg)
	}

	if ectx.Request().Method == http.MethodHead {
		_ = ectx.NoContent(httpErr.Code)

		return
	}

	_ = ectx.JSON(httpErr.Code, response)
}

func buildErrorResponse(httpErr *echo.HTTPError, cfg *ErrorHandlerConfig) map[string]any {
	response := map[string]any{
		"message": httpErr.Message,
	}

	if cfg.IncludeInternalErrors {
		if internal := httpErr.Unwrap(); internal != nil {
			response["internal"] = internal.Error()
		}
	}

	return response
}

func requestFields(ectx echo.Context) map[string]any {
	fields := map[string]any{
		"path":   ectx.Request().URL.Path,
		"method": ectx.Request().Method,
	}

	if id, ok := ectx.Get(ContextKeyRequestID).(string); ok && id != "" {
		fields["request_id"] = id
	}

	if handler := GetHandler(ectx); handler != "" {
		fields["handler"] = handler
	}

	if name := GetTool(ectx); name != "" {
		fields["tool"] = name
	}

	return fields
}

func logHTTPError(ectx echo.Context, httpErr *echo.HTTPError, logger *zerolog.Logger) {
	fields := requestFields(ectx)
	fields["status_code"] = httpErr.Code
	fields["message"] = httpErr.Message

	loggerWithFields := logger.With().Fields(fields).Logger()

	if internal := httpErr.Unwrap(); internal != nil {
		loggerWithFields = loggerWithFields.With().Err(internal).Logger()
	}

	switch {
	case httpErr.Code >= http.StatusInternalServerError:
		loggerWithFields.Error().Msg("Request failed with server error")
	case httpErr.Code >= http.StatusBadRequest:
		loggerWithFields.Warn().Msg("Request failed with client error")
	default:
		loggerWithFields.Info().Msg("HTTP error")
	}
}

func logError(ectx echo.Context, err error, logger *zerolog.Logger) {
	logger.Error().
		Err(err).
		Fields(requestFields(ectx)).
		Msg("Unhandled error")
}
