package mcpserver

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mukulkathayat/linkedin-mcp/tool"
)

// NewTool derives the MCP tool definition, input schema included, from a
// descriptor.
func NewTool(desc tool.Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(describe(desc)),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}

	for _, param := range desc.Params {
		opts = append(opts, property(param))
	}

	return mcp.NewTool(desc.Name, opts...)
}

func describe(desc tool.Descriptor) string {
	if len(desc.Notes) == 0 {
		return desc.Description
	}

	var b strings.Builder

	b.WriteString(desc.Description)

	for _, note := range desc.Notes {
		b.WriteString("\n\nNote: ")
		b.WriteString(note)
	}

	return b.String()
}

func property(param tool.Param) mcp.ToolOption {
	opts := []mcp.PropertyOption{mcp.Description(param.Description)}
	if param.Required {
		opts = append(opts, mcp.Required())
	}

	switch param.Kind {
	case tool.Integer:
		if def, ok := param.Default.(int); ok {
			opts = append(opts, mcp.DefaultNumber(float64(def)))
		}

		return mcp.WithNumber(param.Name, opts...)
	case tool.Boolean:
		if def, ok := param.Default.(bool); ok {
			opts = append(opts, mcp.DefaultBool(def))
		}

		return mcp.WithBoolean(param.Name, opts...)
	case tool.StringList:
		return mcp.WithArray(param.Name, append(opts, mcp.WithStringItems())...)
	case tool.ObjectList:
		return mcp.WithArray(param.Name, append(opts, mcp.Items(map[string]any{"type": "object"}))...)
	case tool.String:
		fallthrough
	default:
		if def, ok := param.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(def))
		}

		return mcp.WithString(param.Name, opts...)
	}
}

// handle runs one descriptor. Upstream failures come back as error results
// carrying the JSON envelope, never as a protocol error.
func handle(dispatcher *tool.Dispatcher, desc tool.Descriptor) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := dispatcher.Invoke(ctx, desc, req.GetArguments())
		if result.OK() {
			return mcp.NewToolResultText(string(result.Value)), nil
		}

		return mcp.NewToolResultError(string(result.JSON())), nil
	}
}
