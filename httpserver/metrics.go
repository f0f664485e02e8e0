package httpserver

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// NewMetricsMiddleware records request counts and latencies on the default
// registry. Long-lived SSE streams are left out.
func NewMetricsMiddleware(subsystem string) echo.MiddlewareFunc {
	return NewMetricsMiddlewareWithRegisterer(subsystem, prometheus.DefaultRegisterer)
}

func NewMetricsMiddlewareWithRegisterer(subsystem string, reg prometheus.Registerer) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{ //nolint:exhaustruct
		Subsystem:  subsystem,
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/mcp/sse"
		},
	})
}
