// Package mcpserver registers every catalog tool on an MCP server and mounts
// its HTTP transports on an echo router.
package mcpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mukulkathayat/linkedin-mcp/tool"
	"github.com/rs/zerolog/log"
)

const (
	DefaultName    = "LinkedInProfiler"
	DefaultVersion = "1.0.0"

	BasePath        = "/mcp"
	SSEPath         = BasePath + "/sse"
	MessagePath     = BasePath + "/message"
	messageEndpoint = "/message"
	sseEndpoint     = "/sse"
)

type Config struct {
	Name      string
	Version   string
	EnableSSE bool
}

type Server struct {
	mcp        *server.MCPServer
	streamable http.Handler
	sse        *server.SSEServer
}

func New(cfg Config, dispatcher *tool.Dispatcher, recorder Recorder) *Server {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}

	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithToolHandlerMiddleware(observe(recorder)),
		server.WithRecovery(),
	)

	for _, desc := range dispatcher.Catalog().All() {
		mcpServer.AddTool(NewTool(desc), handle(dispatcher, desc))
	}

	srv := &Server{
		mcp:        mcpServer,
		streamable: server.NewStreamableHTTPServer(mcpServer, server.WithStateLess(true)),
		sse:        nil,
	}

	if cfg.EnableSSE {
		srv.sse = server.NewSSEServer(
			mcpServer,
			server.WithStaticBasePath(BasePath),
			server.WithSSEEndpoint(sseEndpoint),
			server.WithMessageEndpoint(messageEndpoint),
		)
	}

	log.Info().
		Str("name", name).
		Str("version", version).
		Int("tools", dispatcher.Catalog().Len()).
		Bool("sse", cfg.EnableSSE).
		Msg("MCP server initialized")

	return srv
}

// MCP returns the underlying server, mainly for in-process calls.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// Mount exposes Streamable HTTP at /mcp and, when enabled, the SSE transport
// at /mcp/sse with its message endpoint at /mcp/message.
func (s *Server) Mount(e *echo.Echo) {
	e.Match(
		[]string{http.MethodGet, http.MethodPost, http.MethodDelete},
		BasePath,
		echo.WrapHandler(s.streamable),
	)

	if s.sse == nil {
		return
	}

	e.GET(SSEPath, echo.WrapHandler(s.sse.SSEHandler()))
	e.POST(MessagePath, echo.WrapHandler(s.sse.MessageHandler()))
}
