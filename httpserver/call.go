package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/mukulkathayat/linkedin-mcp/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type HandlerFunc[REQ any, RES any] func(log zerolog.Logger, c echo.Context, request *REQ) (*HandlerResponse[RES], *echo.HTTPError)

// ExecuteStandardized runs delegate and wraps its data in an APIResponse
// carrying the request id.
func ExecuteStandardized[REQ any, RES any](
	e echo.Context,
	request *REQ,
	handlerName string,
	delegate HandlerFunc[REQ, RES],
) (any, *echo.HTTPError) {
	requestID, ok := e.Get(middleware.ContextKeyRequestID).(string)
	if !ok {
		requestID = ""
	}

	logger := log.With().
		Str("handler", handlerName).
		Str("request_id", requestID).
		Logger()

	internalResponse, delegateError := delegate(logger, e, request)
	if delegateError != nil {
		logger.Error().
			Int("status", delegateError.Code).
			AnErr("cause", delegateError.Internal).
			Msgf("Request failed with HTTP error: %v", delegateError.Message)

		return nil, delegateError
	}

	return &APIResponse[RES]{
		RequestID:  requestID,
		Data:       internalResponse.Data,
		Pagination: internalResponse.Pagination,
	}, nil
}
