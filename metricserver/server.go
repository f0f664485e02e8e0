// Package metricserver serves Prometheus metrics and a status probe on a
// dedicated listener, separate from the public MCP endpoint.
package metricserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

const (
	MetricsPath = "/metrics"
	StatusPath  = "/status"
)

type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	GracePeriod  time.Duration
	// Gatherer defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

type Server struct {
	gracePeriod time.Duration
	address     string
	echo        *echo.Echo
}

func New(cfg *Config) *Server {
	ech := echo.New()
	ech.Server.ReadTimeout = cfg.ReadTimeout
	ech.Server.WriteTimeout = cfg.WriteTimeout
	ech.HideBanner = true
	ech.HidePort = true

	ech.GET(StatusPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	})

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	ech.GET(MetricsPath, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	return &Server{
		gracePeriod: cfg.GracePeriod,
		address:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		echo:        ech,
	}
}

// Handler exposes the routes without binding a listener.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(_ context.Context) error {
	log.Info().Str("address", s.address).Msg("Starting metrics server")

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.gracePeriod)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to gracefully shut down metrics server")

		return err
	}

	return nil
}

func (s *Server) Name() string {
	return "metric"
}
