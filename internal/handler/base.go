package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/errs"
	"github.com/paramtour/paramtour/internal/middleware"
	"github.com/paramtour/paramtour/internal/server"
	"github.com/paramtour/paramtour/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// It is embedded by concrete handlers (e.g. PathParamsHandler) so they can
// reach shared resources via *server.Server (config, logger, etc.).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value: the struct only contains a pointer
// field, so copying is cheap and still points to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function: it receives the fully bound
// argument set and returns the response value to serialize.
type HandlerFunc func(c echo.Context, args binding.Args) (any, error)

// Entry pairs a route descriptor with its ready-to-register Echo handler.
// Route tables are ordered slices of entries; registration order is the
// matching contract (literal segments before variable ones).
type Entry struct {
	Route binding.Route
	Func  echo.HandlerFunc
}

// entry wraps a plain (no request body) route into an Entry.
func (h Handler) entry(rt binding.Route, fn HandlerFunc) Entry {
	return Entry{Route: rt, Func: Handle(h, rt, http.StatusOK, fn)}
}

// Handle wraps a handler function with parameter binding, validation,
// logging, and response writing.
//
// The pipeline:
//  1. run the binder over the route's parameter table
//  2. reject with one aggregated 422 if anything failed
//  3. execute the handler on the typed arguments
//  4. serialize the result as JSON with the given status
func Handle(h Handler, rt binding.Route, status int, fn HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, rt, status, nil, func(c echo.Context, args binding.Args) (any, error) {
			return fn(c, args)
		})
	}
}

// HandleWithBody wraps a handler that additionally consumes a JSON request
// body. Body failures aggregate into the same detail list as path/query
// failures, so the client sees every problem in one response.
func HandleWithBody[B validation.Validatable](
	h Handler,
	rt binding.Route,
	status int,
	newBody func() B,
	fn func(c echo.Context, args binding.Args, body B) (any, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := newBody()
		bindBody := func(c echo.Context) []errs.ValidationDetail {
			return validation.BindBody(c, body)
		}
		return handleRequest(c, rt, status, bindBody, func(c echo.Context, args binding.Args) (any, error) {
			return fn(c, args, body)
		})
	}
}

// handleRequest is the unified execution pipeline shared by all handlers.
func handleRequest(
	c echo.Context,
	rt binding.Route,
	status int,
	bindBody func(c echo.Context) []errs.ValidationDetail,
	fn HandlerFunc,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", rt.Path).
		Logger()

	// ---------------- Binding phase ----------------------------------
	bindStart := time.Now()

	args, details := binding.Bind(c, rt.Params)
	if bindBody != nil {
		details = append(details, bindBody(c)...)
	}

	bindDuration := time.Since(bindStart)

	// Deprecated parameters still bind normally; the server just notes
	// their use so callers can be migrated.
	for _, p := range rt.Params {
		if p.Deprecated && p.Source == binding.SourceQuery && c.QueryParams().Has(p.WireName()) {
			logger.Warn().
				Str("param", p.WireName()).
				Msg("deprecated query parameter supplied")
		}
	}

	if len(details) > 0 {
		// An unknown variant in an enum path segment names no declared
		// route target, so it surfaces as not-found rather than 422.
		for _, d := range details {
			if d.Kind == errs.KindEnum && len(d.Location) > 0 && d.Location[0] == errs.LocationPath {
				logger.Warn().
					Dur("bind_duration", bindDuration).
					Str("param", d.Location[1]).
					Msg("unknown enum path segment")
				return errs.NewNotFoundError(d.Message, nil)
			}
		}

		logger.Warn().
			Dur("bind_duration", bindDuration).
			Int("error_count", len(details)).
			Msg("request binding failed")

		return errs.NewValidationError(details)
	}

	logger.Debug().
		Dur("bind_duration", bindDuration).
		Msg("request binding successful")

	// ---------------- Handler execution phase ------------------------
	handlerStart := time.Now()
	result, err := fn(c, args)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Info().
		Dur("bind_duration", bindDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}
