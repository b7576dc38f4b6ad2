package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/middleware"
	"github.com/paramtour/paramtour/internal/server"
)

// HealthHandler exposes a system endpoint that external systems can use
// to verify the service is alive.
//
// This service has no backing dependencies (no database, no cache), so
// the check reduces to process liveness plus environment metadata.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthResponse is the health endpoint's shape.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// CheckHealth returns the service's health status.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
