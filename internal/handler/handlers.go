package handler

import (
	"github.com/paramtour/paramtour/internal/repository"
	"github.com/paramtour/paramtour/internal/server"
)

// Handlers is a container that groups all HTTP handlers.
//
// Router setup receives this one object instead of many; each field is a
// themed group of routes mirroring the feature being demonstrated.
type Handlers struct {
	FirstSteps       *FirstStepsHandler
	PathParams       *PathParamsHandler
	QueryParams      *QueryParamsHandler
	Body             *BodyHandler
	QueryValidations *QueryValidationsHandler
	Health           *HealthHandler
	Schema           *SchemaHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, repos *repository.Repositories) *Handlers {
	return &Handlers{
		FirstSteps:       NewFirstStepsHandler(s),
		PathParams:       NewPathParamsHandler(s),
		QueryParams:      NewQueryParamsHandler(s, repos),
		Body:             NewBodyHandler(s),
		QueryValidations: NewQueryValidationsHandler(s),
		Health:           NewHealthHandler(s),
		Schema:           NewSchemaHandler(s),
	}
}

// Entries concatenates every handler group's routes, preserving the
// declaration order both within and across groups. This single ordered
// table drives route registration and the schema document.
func (h *Handlers) Entries() []Entry {
	var entries []Entry
	entries = append(entries, h.FirstSteps.Entries()...)
	entries = append(entries, h.PathParams.Entries()...)
	entries = append(entries, h.QueryParams.Entries()...)
	entries = append(entries, h.Body.Entries()...)
	entries = append(entries, h.QueryValidations.Entries()...)
	return entries
}
