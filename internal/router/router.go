// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and walks the ordered route table,
// mapping each declared route to its handler. Registration follows
// declaration order: the table lists /users/me before /users/:user_id,
// and that contract is what keeps the literal route reachable.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/handler"
	"github.com/paramtour/paramtour/internal/middleware"
)

// Setup builds the fully wired Echo instance: middleware stack, global
// error handler, the declared route table, and system routes.
func Setup(mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Every error, from binding failures to unknown routes to panics,
	// funnels through the one global handler so clients see one shape.
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.CORS())
	e.Use(mw.Global.Secure())
	e.Use(mw.Metrics.Collect())

	entries := h.Entries()
	for _, entry := range entries {
		e.Add(entry.Route.Method, entry.Route.Path, entry.Func)
	}

	registerSystemRoutes(e, h, routesOf(entries))

	return e
}

// routesOf projects the descriptor out of each table entry for the
// schema document.
func routesOf(entries []handler.Entry) []binding.Route {
	routes := make([]binding.Route, len(entries))
	for i, entry := range entries {
		routes[i] = entry.Route
	}
	return routes
}
