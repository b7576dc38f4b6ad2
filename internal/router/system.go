package router

import (
	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerSystemRoutes registers "system" endpoints that are not part of
// the demonstrated parameter tour:
//  1. Health endpoint (used by monitors / load balancers)
//  2. Schema endpoint (introspection over the declared route table)
//  3. Prometheus metrics endpoint
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers, routes []binding.Route) {
	e.GET("/status", h.Health.CheckHealth)

	e.GET("/schema", h.Schema.Serve(routes))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
