package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mukulkathayat/linkedin-mcp/httpserver"
	"github.com/mukulkathayat/linkedin-mcp/middleware"
	"github.com/mukulkathayat/linkedin-mcp/tool"
	"github.com/rs/zerolog"
)

var ErrToolNotFound = errors.New("tool not found")

type ListToolsRequest struct {
	Page     int `query:"page"     validate:"gte=0"`
	PageSize int `query:"pageSize" validate:"gte=0"`
}

type ParamInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

type ToolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Params      []ParamInfo `json:"params"`
	Notes       []string    `json:"notes,omitempty"`
}

type CallToolRequest struct {
	Name      string         `json:"-"         param:"name" validate:"required,toolname"`
	Arguments map[string]any `json:"arguments"`
}

// CallToolResponse carries either the upstream JSON or the failure envelope
// in Result; OK tells them apart.
type CallToolResponse struct {
	Tool   string          `json:"tool"`
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
}

func describeTool(desc tool.Descriptor) ToolInfo {
	params := make([]ParamInfo, 0, len(desc.Params))
	for _, p := range desc.Params {
		params = append(params, ParamInfo{
			Name:        p.Name,
			Type:        p.Kind.String(),
			Required:    p.Required,
			Default:     p.Default,
			Description: p.Description,
		})
	}

	return ToolInfo{
		Name:        desc.Name,
		Description: desc.Description,
		Method:      desc.Method,
		Path:        desc.Path,
		Params:      params,
		Notes:       desc.Notes,
	}
}

func (s *Service) ListTools(ctx echo.Context, req *ListToolsRequest) (any, *echo.HTTPError) {
	delegator := func(
		_ zerolog.Logger,
		_ echo.Context,
		req *ListToolsRequest,
	) (*httpserver.HandlerResponse[[]ToolInfo], *echo.HTTPError) {
		descriptors, pagination := httpserver.Paginate(s.dispatcher.Catalog().All(), req.Page, req.PageSize)

		tools := make([]ToolInfo, 0, len(descriptors))
		for _, desc := range descriptors {
			tools = append(tools, describeTool(desc))
		}

		return &httpserver.HandlerResponse[[]ToolInfo]{
			Data:       tools,
			Pagination: pagination,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "ListTools", delegator)
}

// CallTool invokes a tool over REST. Upstream failures are reported in the
// body with a 200 status, the same way MCP clients receive them.
func (s *Service) CallTool(ctx echo.Context, req *CallToolRequest) (any, *echo.HTTPError) {
	delegator := func(
		log zerolog.Logger,
		c echo.Context,
		req *CallToolRequest,
	) (*httpserver.HandlerResponse[CallToolResponse], *echo.HTTPError) {
		desc, ok := s.dispatcher.Catalog().Lookup(req.Name)
		if !ok {
			return nil, httpserver.HTTPError(http.StatusNotFound, ErrToolNotFound, req.Name)
		}

		c.Set(middleware.ContextKeyTool, desc.Name)

		result := s.dispatcher.Invoke(c.Request().Context(), desc, req.Arguments)

		log.Debug().
			Str("tool", desc.Name).
			Bool("ok", result.OK()).
			Msg("Tool called over REST")

		return &httpserver.HandlerResponse[CallToolResponse]{
			Data: CallToolResponse{
				Tool:   desc.Name,
				OK:     result.OK(),
				Result: result.JSON(),
			},
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "CallTool", delegator)
}
