// Package service implements the REST handlers that sit next to the MCP
// transport.
package service

import (
	"github.com/mukulkathayat/linkedin-mcp/tool"
)

const RunningStatus = "LinkedIn MCP server is running"

type Service struct {
	dispatcher *tool.Dispatcher
}

func New(dispatcher *tool.Dispatcher) *Service {
	return &Service{
		dispatcher: dispatcher,
	}
}
