package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/server"
)

// SchemaHandler serves a machine-readable description of every declared
// route, generated from the same descriptor tables the binder runs.
//
// This is where the two documentation-only flags become observable:
// parameters marked hidden are omitted from the document, and deprecated
// parameters are flagged. Neither affects runtime binding.
type SchemaHandler struct {
	Handler
}

// NewSchemaHandler constructs a SchemaHandler with access to shared
// dependencies.
func NewSchemaHandler(s *server.Server) *SchemaHandler {
	return &SchemaHandler{Handler: NewHandler(s)}
}

// SchemaDocument is the introspection response.
type SchemaDocument struct {
	Service string        `json:"service"`
	Routes  []RouteSchema `json:"routes"`
}

// RouteSchema describes one declared route.
type RouteSchema struct {
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	Summary    string        `json:"summary,omitempty"`
	BodySchema string        `json:"body_schema,omitempty"`
	Params     []ParamSchema `json:"params,omitempty"`
}

// ParamSchema describes one declared parameter under its wire name.
type ParamSchema struct {
	Name       string   `json:"name"`
	In         string   `json:"in"`
	Type       string   `json:"type"`
	Required   bool     `json:"required"`
	Default    any      `json:"default,omitempty"`
	MinLength  int      `json:"min_length,omitempty"`
	MaxLength  int      `json:"max_length,omitempty"`
	Pattern    string   `json:"pattern,omitempty"`
	Enum       []string `json:"enum,omitempty"`
	Deprecated bool     `json:"deprecated,omitempty"`
}

// Serve returns an echo.HandlerFunc rendering the schema of the given
// route table. The table is captured once at registration; routes never
// change at runtime.
func (h *SchemaHandler) Serve(routes []binding.Route) echo.HandlerFunc {
	doc := buildSchemaDocument(routes)
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	}
}

func buildSchemaDocument(routes []binding.Route) SchemaDocument {
	doc := SchemaDocument{
		Service: "paramtour",
		Routes:  make([]RouteSchema, 0, len(routes)),
	}

	for _, rt := range routes {
		rs := RouteSchema{
			Method:     rt.Method,
			Path:       documentPath(rt),
			Summary:    rt.Summary,
			BodySchema: rt.BodySchema,
		}

		for _, p := range rt.Params {
			if p.Hidden {
				continue
			}

			ps := ParamSchema{
				Name:       p.WireName(),
				In:         string(p.Source),
				Type:       p.Kind.String(),
				Required:   p.Required,
				Default:    p.Default,
				MinLength:  p.MinLength,
				MaxLength:  p.MaxLength,
				Deprecated: p.Deprecated,
			}
			if p.Pattern != nil {
				ps.Pattern = p.Pattern.String()
			}
			if p.Kind == binding.KindEnum {
				ps.Enum = p.Enum
			}
			rs.Params = append(rs.Params, ps)
		}

		doc.Routes = append(doc.Routes, rs)
	}

	return doc
}

// documentPath rewrites the Echo template into brace style: ":item_id"
// becomes "{item_id}" and a trailing wildcard becomes the greedy
// parameter's declared name.
func documentPath(rt binding.Route) string {
	segments := strings.Split(rt.Path, "/")
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, ":"):
			segments[i] = "{" + seg[1:] + "}"
		case seg == "*":
			name := "path"
			for _, p := range rt.Params {
				if p.Greedy {
					name = p.Name
					break
				}
			}
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}
