package middleware

import (
	"maps"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type LogFieldExtractor func(echo.Context) map[string]any

// RequestLogger logs one line per completed request. Failed handlers are left
// to the error handler, which logs them with more context.
func RequestLogger(log zerolog.Logger, extraLogFieldExtractor ...LogFieldExtractor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				return err
			}

			fields := extractLogFields(ctx, start)

			if id, ok := ctx.Get(ContextKeyRequestID).(string); ok && id != "" {
				fields["request_id"] = id
			}

			for _, extractor := range extraLogFieldExtractor {
				maps.Copy(fields, extractor(ctx))
			}

			logRequest(log, fields, ctx.Response().Status)

			return nil
		}
	}
}

func extractLogFields(ctx echo.Context, start time.Time) map[string]any {
	req := ctx.Request()
	res := ctx.Response()

	return map[string]any{
		"remote_ip":   ctx.RealIP(),
		"latency":     time.Since(start).String(),
		"host":        req.Host,
		"request":     req.Method + " " + req.URL.Path,
		"request_uri": req.RequestURI,
		"status":      res.Status,
		"size":        res.Size,
		"user_agent":  req.UserAgent(),
	}
}

func logRequest(log zerolog.Logger, fields map[string]any, status int) {
	logger := log.With().Fields(fields).Logger()

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error().Msg("The request has resulted in a server error")
	case status >= http.StatusBadRequest:
		logger.Warn().Msg("The request has resulted in a client error")
	default:
		logger.Info().Msg("The request has completed successfully")
	}
}
