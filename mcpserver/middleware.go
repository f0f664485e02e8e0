package mcpserver

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mukulkathayat/linkedin-mcp/metricserver"
	"github.com/rs/zerolog/log"
)

// Recorder receives one observation per tool call.
type Recorder interface {
	ObserveToolCall(tool, outcome string, elapsed time.Duration)
}

var _ Recorder = (*metricserver.ToolMetrics)(nil)

type noopRecorder struct{}

func (noopRecorder) ObserveToolCall(string, string, time.Duration) {}

func observe(recorder Recorder) server.ToolHandlerMiddleware {
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start)

			outcome := metricserver.OutcomeSuccess

			switch {
			case err != nil:
				outcome = metricserver.OutcomeError
			case result != nil && result.IsError:
				outcome = metricserver.OutcomeFailure
			}

			recorder.ObserveToolCall(req.Params.Name, outcome, elapsed)

			event := log.Info()
			if outcome != metricserver.OutcomeSuccess {
				event = log.Warn().Err(err)
			}

			event.
				Str("tool", req.Params.Name).
				Str("outcome", outcome).
				Dur("latency", elapsed).
				Msg("Tool call completed")

			return result, err
		}
	}
}
