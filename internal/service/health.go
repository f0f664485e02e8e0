package service

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mukulkathayat/linkedin-mcp/httpserver"
	"github.com/rs/zerolog"
)

type HealthCheckRequest struct{}

type HealthCheckResponse struct {
	Status string `example:"healthy" json:"status"`
	Tools  int    `example:"47"      json:"tools"`
}

// Status answers the root path with the fixed liveness payload.
func (s *Service) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, httpserver.StatusResponse{Status: RunningStatus})
}

func (s *Service) CheckHealth(ctx echo.Context, req *HealthCheckRequest) (any, *echo.HTTPError) {
	delegator := func(
		log zerolog.Logger,
		_ echo.Context,
		_ *HealthCheckRequest,
	) (*httpserver.HandlerResponse[HealthCheckResponse], *echo.HTTPError) {
		log.Debug().Msg("Health check requested")

		return &httpserver.HandlerResponse[HealthCheckResponse]{
			Data: HealthCheckResponse{
				Status: "healthy",
				Tools:  s.dispatcher.Catalog().Len(),
			},
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "CheckHealth", delegator)
}
