package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ContextKeyRequestID string = "requestID"
	ContextKeyBody      string = "body"
	ContextKeyHandler   string = "handler"
	ContextKeyTool      string = "tool"
)

const HeaderXRequestID = "X-Request-ID"

// GetRequestID falls back to a fresh id when the request-id middleware did
// not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(ContextKeyRequestID).(string); ok {
		return requestID
	}

	return uuid.NewString()
}

func GetHandler(c echo.Context) string {
	if handler, ok := c.Get(ContextKeyHandler).(string); ok {
		return handler
	}

	return ""
}

func GetTool(c echo.Context) string {
	if name, ok := c.Get(ContextKeyTool).(string); ok {
		return name
	}

	return ""
}
