package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/server"
)

// FirstStepsHandler serves the introductory route: a fixed greeting with
// no parameters at all.
type FirstStepsHandler struct {
	Handler
}

// NewFirstStepsHandler constructs a FirstStepsHandler with access to
// shared dependencies.
func NewFirstStepsHandler(s *server.Server) *FirstStepsHandler {
	return &FirstStepsHandler{Handler: NewHandler(s)}
}

// MessageResponse is the fixed greeting shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// Entries returns the handler's routes in declaration order.
func (h *FirstStepsHandler) Entries() []Entry {
	return []Entry{
		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/",
			Summary: "Root greeting",
		}, h.root),
	}
}

func (h *FirstStepsHandler) root(c echo.Context, args binding.Args) (any, error) {
	return MessageResponse{Message: "Hello World"}, nil
}
