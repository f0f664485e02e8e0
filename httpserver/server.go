// Package httpserver hosts the public echo router: MCP transports, the REST
// mirror of the tool catalog, and liveness routes.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/mukulkathayat/linkedin-mcp/middleware"
	"github.com/mukulkathayat/linkedin-mcp/validator"
	"github.com/rs/zerolog/log"
)

const (
	defaultBodyLimit = "10M"

	headerMCPSessionID = "Mcp-Session-Id"
)

var ErrNotRunning = errors.New("httpserver: server is not running")

type Config struct {
	Host         string
	Port         int
	EnableCors   bool
	AllowOrigins []string
	BodyLimit    string
	ReadTimeout  time.Duration
	// WriteTimeout also bounds SSE streams; zero leaves them open.
	WriteTimeout time.Duration
	GracePeriod  time.Duration
	// Metrics adds echoprometheus request metrics under this subsystem when set.
	MetricsSubsystem string
}

type Server struct {
	address      string
	gracePeriod  time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
	Echo         *echo.Echo
	Root         *echo.Group
	httpServer   *http.Server
}

func New(cfg *Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.DefaultRestValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(e.DefaultHTTPErrorHandler, &middleware.ErrorHandlerConfig{ //nolint:exhaustruct
		Logger:    &log.Logger,
		LogErrors: true,
	})

	e.Pre(middleware.RequestLogger(log.Logger, SafeLogFieldsExtractor))
	e.Pre(echomiddleware.BodyLimit(bodyLimit(cfg.BodyLimit)))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID(echomiddleware.DefaultSkipper))

	if cfg.MetricsSubsystem != "" {
		e.Use(NewMetricsMiddleware(cfg.MetricsSubsystem))
	}

	if cfg.EnableCors {
		e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg.AllowOrigins)))
	}

	return &Server{ //nolint:exhaustruct
		address:      net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		gracePeriod:  cfg.GracePeriod,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		Echo:         e,
		Root:         e.Group(""),
	}
}

func bodyLimit(limit string) string {
	if limit == "" {
		return defaultBodyLimit
	}

	return limit
}

// corsConfig allows every origin by default and echoes the caller's origin
// back so credentialed browser requests are accepted.
func corsConfig(origins []string) echomiddleware.CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return echomiddleware.CORSConfig{ //nolint:exhaustruct
		AllowOrigins:     origins,
		AllowCredentials: true,
		ExposeHeaders:    []string{middleware.HeaderXRequestID, headerMCPSessionID},

		UnsafeWildcardOriginWithAllowCredentials: true,
	}
}

func (s *Server) Address() string {
	return s.address
}

// Start serves until Stop is called.
func (s *Server) Start(_ context.Context) error {
	s.httpServer = &http.Server{ //nolint:exhaustruct
		Addr:              s.address,
		Handler:           s.Echo,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      s.writeTimeout,
	}

	log.Info().
		Str("address", s.address).
		Msg("The HTTP server is being started")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

func (s *Server) Stop() error {
	log.Info().
		Msg("The graceful shutdown of HTTP server is being initiated")

	if s.httpServer == nil {
		return ErrNotRunning
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.gracePeriod)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to gracefully stop HTTP server")

		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}

	log.Info().
		Msg("The HTTP server shutdown has been completed successfully")

	return nil
}

func (s *Server) Name() string {
	return "http"
}

// SafeLogFieldsExtractor records that a bound request exists without logging
// its content, which may carry profile URLs.
func SafeLogFieldsExtractor(ctx echo.Context) map[string]any {
	fields := make(map[string]any)

	if req := ctx.Get(middleware.ContextKeyBody); req != nil {
		fields["has_body"] = true
		fields["body_type"] = fmt.Sprintf("%T", req)
	} else {
		fields["has_body"] = false
	}

	if name := middleware.GetTool(ctx); name != "" {
		fields["tool"] = name
	}

	return fields
}
