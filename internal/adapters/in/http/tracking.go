package http

import (
	"net/http"

	"courier/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetTracking handles GET /api/v1/tracking/{tracking_code}. It is public and exposes no
// customer, price or payment data.
func (s *Server) GetTracking(ctx echo.Context) error {
	query, err := queries.NewGetTrackingInfoQuery(ctx.Param("tracking_code"))
	if err != nil {
		return err
	}

	info, err := s.h.GetTrackingInfo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, trackingResponse(info))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
