package handler

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/server"
)

// fixedQueryPattern accepts only the literal "fixedquery"; the match is
// full-string, so no other non-empty value passes.
var fixedQueryPattern = regexp.MustCompile(`^fixedquery$`)

// QueryValidationsHandler demonstrates string-validation rules on query
// parameters: length bounds, pattern matching, defaults, explicit
// requiredness, aliasing, deprecation, and schema exclusion. Each route
// adds exactly one rule over the previous one.
type QueryValidationsHandler struct {
	Handler
}

// NewQueryValidationsHandler constructs a QueryValidationsHandler with
// access to shared dependencies.
func NewQueryValidationsHandler(s *server.Server) *QueryValidationsHandler {
	return &QueryValidationsHandler{Handler: NewHandler(s)}
}

// SearchItem is one fixed entry of the demo search results.
type SearchItem struct {
	ItemID string `json:"item_id"`
}

// SearchResultsResponse is the family's shared shape: fixed items plus
// the echoed query when one resolved.
type SearchResultsResponse struct {
	Items []SearchItem `json:"items"`
	Q     string       `json:"q,omitempty"`
}

// ListQueryResponse echoes a list-valued query parameter.
type ListQueryResponse struct {
	Q []string `json:"q"`
}

// HiddenQueryResponse echoes the schema-excluded parameter.
type HiddenQueryResponse struct {
	HiddenQuery string `json:"hidden_query"`
}

func searchResults(q string) SearchResultsResponse {
	return SearchResultsResponse{
		Items: []SearchItem{{ItemID: "Foo"}, {ItemID: "Bar"}},
		Q:     q,
	}
}

// Entries returns the handler's routes in declaration order.
func (h *QueryValidationsHandler) Entries() []Entry {
	return []Entry{
		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-str-validation/",
			Summary: "Plain optional string query parameter",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-str-max-length-validation/",
			Summary: "Optional string capped at 50 characters",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString, MaxLength: 50},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-str-max-min-length-validation/",
			Summary: "Optional string bounded to 3..50 characters",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString, MinLength: 3, MaxLength: 50},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-str-regex-validation/",
			Summary: "Optional string that must match ^fixedquery$ exactly",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString, MinLength: 3, MaxLength: 50, Pattern: fixedQueryPattern},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-str-default-validation/",
			Summary: "Defaulted string still subject to length bounds",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString, Default: "fixedquery", MinLength: 3, MaxLength: 50},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-str-required-validation/",
			Summary: "Required string with constraint metadata and no default",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString, Required: true, MinLength: 3, MaxLength: 50},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-list-validation/",
			Summary: "List-valued parameter collecting every occurrence in order",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindStringList, Default: []string{"foo", "bar"}},
			},
		}, h.echoQueryList),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-alias-validation/",
			Summary: "Parameter read from the wire under the alias item-query",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString, Alias: "item-query", MinLength: 3, MaxLength: 50},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-deprecated-validation/",
			Summary: "Deprecated parameter: binds normally, flagged in the schema",
			Params: []binding.Param{
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString, MinLength: 3, MaxLength: 50, Deprecated: true},
			},
		}, h.echoQuery),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-query-params-hidden-validation/",
			Summary: "Parameter excluded from the schema document",
			Params: []binding.Param{
				{Name: "hidden_query", Source: binding.SourceQuery, Kind: binding.KindString, Hidden: true},
			},
		}, h.echoHiddenQuery),
	}
}

func (h *QueryValidationsHandler) echoQuery(c echo.Context, args binding.Args) (any, error) {
	return searchResults(args.String("q")), nil
}

func (h *QueryValidationsHandler) echoQueryList(c echo.Context, args binding.Args) (any, error) {
	return ListQueryResponse{Q: args.StringList("q")}, nil
}

func (h *QueryValidationsHandler) echoHiddenQuery(c echo.Context, args binding.Args) (any, error) {
	if q := args.String("hidden_query"); q != "" {
		return HiddenQueryResponse{HiddenQuery: q}, nil
	}
	return HiddenQueryResponse{HiddenQuery: "Not found"}, nil
}
