package main

import (
	"context"
	"fmt"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	"github.com/mukulkathayat/linkedin-mcp/httpclient"
	"github.com/mukulkathayat/linkedin-mcp/httpserver"
	"github.com/mukulkathayat/linkedin-mcp/internal/config"
	"github.com/mukulkathayat/linkedin-mcp/internal/service"
	"github.com/mukulkathayat/linkedin-mcp/linkedin"
	"github.com/mukulkathayat/linkedin-mcp/logutil"
	"github.com/mukulkathayat/linkedin-mcp/mcpserver"
	"github.com/mukulkathayat/linkedin-mcp/metricserver"
	"github.com/mukulkathayat/linkedin-mcp/runner"
	"github.com/mukulkathayat/linkedin-mcp/tool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

const metricsSubsystem = "linkedin_mcp"

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application exited with an error")
	}

	log.Info().Msg("Application shutdown complete")
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logutil.Setup(cfg.LogLevel, cfg.LogFormat)

	app := newApplication(cfg, prometheus.DefaultRegisterer)

	opts := []runner.Option{
		runner.WithShutdownTimeout(2 * cfg.GracefulShutdownPeriod),
	}

	if cfg.MetricServerEnabled {
		opts = append(opts, runner.WithInfrastructureService(app.newMetricServer()))
	}

	opts = append(opts, runner.WithCoreService(app.newHTTPServer()))

	log.Info().
		Str("upstream", cfg.BaseURL()).
		Int("tools", app.dispatcher.Catalog().Len()).
		Bool("sse", cfg.MCPEnableSSE).
		Msg("LinkedIn MCP server configured")

	return runner.New(opts...).Run(context.Background())
}

type application struct {
	cfg        *config.Config
	dispatcher *tool.Dispatcher
	mcp        *mcpserver.Server
	svc        *service.Service
}

func newApplication(cfg *config.Config, reg prometheus.Registerer) *application {
	client := httpclient.New(
		cfg.BaseURL(),
		httpclient.WithCredentials(cfg.Credentials()),
		httpclient.WithTimeout(cfg.LinkedInAPITimeout),
		httpclient.WithMaxResponseSize(cfg.LinkedInAPIMaxResponseSize),
	)

	dispatcher := tool.NewDispatcher(linkedin.NewCatalog(), client)

	var recorder mcpserver.Recorder
	if cfg.MetricServerEnabled {
		recorder = metricserver.NewToolMetrics(reg)
	}

	mcp := mcpserver.New(mcpserver.Config{
		Name:      cfg.MCPServerName,
		Version:   cfg.MCPServerVersion,
		EnableSSE: cfg.MCPEnableSSE,
	}, dispatcher, recorder)

	return &application{
		cfg:        cfg,
		dispatcher: dispatcher,
		mcp:        mcp,
		svc:        service.New(dispatcher),
	}
}

func (app *application) newHTTPServer() *httpserver.Server {
	httpCfg := &httpserver.Config{
		Host:             app.cfg.HTTPServerHost,
		Port:             app.cfg.HTTPServerPort,
		EnableCors:       app.cfg.HTTPEnableCORS,
		AllowOrigins:     app.cfg.HTTPAllowOrigins,
		BodyLimit:        app.cfg.HTTPBodyLimit,
		ReadTimeout:      app.cfg.HTTPServerReadTimeout,
		WriteTimeout:     app.cfg.HTTPServerWriteTimeout,
		GracePeriod:      app.cfg.GracefulShutdownPeriod,
		MetricsSubsystem: "",
	}

	if app.cfg.MetricServerEnabled {
		httpCfg.MetricsSubsystem = metricsSubsystem
	}

	svr := httpserver.New(httpCfg)
	app.registerRoutes(svr.Echo, svr.Root)

	return svr
}

func (app *application) newMetricServer() *metricserver.Server {
	metricCfg := &metricserver.Config{
		Host:         app.cfg.MetricServerHost,
		Port:         app.cfg.MetricServerPort,
		ReadTimeout:  app.cfg.MetricServerReadTimeout,
		WriteTimeout: app.cfg.MetricServerWriteTimeout,
		GracePeriod:  app.cfg.GracefulShutdownPeriod,
		Gatherer:     nil,
	}

	return metricserver.New(metricCfg)
}

func (app *application) registerRoutes(e *echo.Echo, root *echo.Group) {
	app.mcp.Mount(e)

	root.GET("/", app.svc.Status)
	root.GET("/health", httpserver.Wrapper(app.svc.CheckHealth))

	v1 := root.Group("/v1")
	v1.GET("/tools", httpserver.Wrapper(app.svc.ListTools))
	v1.POST("/tools/:name/call", httpserver.Wrapper(app.svc.CallTool))
}
