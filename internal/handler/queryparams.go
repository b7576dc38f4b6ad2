package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/repository"
	"github.com/paramtour/paramtour/internal/server"
)

// longDescription is appended to responses unless the caller asked for the
// short form.
const longDescription = "This is an amazing item that has a long description"

// QueryParamsHandler demonstrates binding values from the query string:
// defaults, optional and required parameters, boolean coercion, and
// mixing multiple path and query parameters on one route.
type QueryParamsHandler struct {
	Handler
	repos *repository.Repositories
}

// NewQueryParamsHandler constructs a QueryParamsHandler. The repository
// container supplies the mock item list consulted by the paginated route.
func NewQueryParamsHandler(s *server.Server, repos *repository.Repositories) *QueryParamsHandler {
	return &QueryParamsHandler{Handler: NewHandler(s), repos: repos}
}

// ItemDetailResponse echoes an item id plus whichever optional fields
// resolved. The "with q" and "without q" response shapes are one struct
// with omitted-when-empty fields.
type ItemDetailResponse struct {
	ItemID      string `json:"item_id"`
	Q           string `json:"q,omitempty"`
	Needy       string `json:"needy,omitempty"`
	Description string `json:"description,omitempty"`
}

// ItemPaginationResponse is the required-plus-optional mix: every field is
// present regardless of which had defaults; a never-supplied limit stays
// null.
type ItemPaginationResponse struct {
	ItemID string `json:"item_id"`
	Needy  string `json:"needy"`
	Skip   int    `json:"skip"`
	Limit  *int   `json:"limit"`
}

// UserItemResponse combines two path parameters with optional query ones.
type UserItemResponse struct {
	ItemID      string `json:"item_id"`
	OwnerID     int    `json:"owner_id"`
	Q           string `json:"q,omitempty"`
	Description string `json:"description,omitempty"`
}

// Entries returns the handler's routes in declaration order.
func (h *QueryParamsHandler) Entries() []Entry {
	return []Entry{
		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items/",
			Summary: "List items with skip/limit pagination over the mock list",
			Params: []binding.Param{
				{Name: "skip", Source: binding.SourceQuery, Kind: binding.KindInt, Default: 0},
				{Name: "limit", Source: binding.SourceQuery, Kind: binding.KindInt, Default: 10},
			},
		}, h.listItems),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-optional-param/:item_id",
			Summary: "Optional query parameter echoed only when supplied",
			Params: []binding.Param{
				{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindString, Required: true},
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString},
			},
		}, h.readItemOptionalParam),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-required-query-param/:item_id",
			Summary: "Required query parameter with no default",
			Params: []binding.Param{
				{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindString, Required: true},
				{Name: "needy", Source: binding.SourceQuery, Kind: binding.KindString, Required: true},
			},
		}, h.readItemRequiredQueryParam),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-optional-query-and-bool-param/:item_id",
			Summary: "Optional string plus boolean query parameters",
			Params: []binding.Param{
				{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindString, Required: true},
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString},
				{Name: "short", Source: binding.SourceQuery, Kind: binding.KindBool, Default: false},
			},
		}, h.readItemOptionalQueryAndBoolParam),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items-required-and-optional-params/:item_id",
			Summary: "Required, defaulted, and entirely optional parameters mixed",
			Params: []binding.Param{
				{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindString, Required: true},
				{Name: "needy", Source: binding.SourceQuery, Kind: binding.KindString, Required: true},
				{Name: "skip", Source: binding.SourceQuery, Kind: binding.KindInt, Default: 0},
				{Name: "limit", Source: binding.SourceQuery, Kind: binding.KindInt},
			},
		}, h.readItemRequiredAndOptionalParams),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/users/:user_id/items/:item_id",
			Summary: "Multiple path parameters and query parameters together",
			Params: []binding.Param{
				{Name: "user_id", Source: binding.SourcePath, Kind: binding.KindInt, Required: true},
				{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindString, Required: true},
				{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString},
				{Name: "short", Source: binding.SourceQuery, Kind: binding.KindBool, Default: false},
			},
		}, h.readUserItem),
	}
}

func (h *QueryParamsHandler) listItems(c echo.Context, args binding.Args) (any, error) {
	return h.repos.Items.List(args.Int("skip"), args.Int("limit")), nil
}

func (h *QueryParamsHandler) readItemOptionalParam(c echo.Context, args binding.Args) (any, error) {
	return ItemDetailResponse{
		ItemID: args.String("item_id"),
		Q:      args.String("q"),
	}, nil
}

func (h *QueryParamsHandler) readItemRequiredQueryParam(c echo.Context, args binding.Args) (any, error) {
	return ItemDetailResponse{
		ItemID: args.String("item_id"),
		Needy:  args.String("needy"),
	}, nil
}

func (h *QueryParamsHandler) readItemOptionalQueryAndBoolParam(c echo.Context, args binding.Args) (any, error) {
	resp := ItemDetailResponse{
		ItemID: args.String("item_id"),
		Q:      args.String("q"),
	}
	if !args.Bool("short") {
		resp.Description = longDescription
	}
	return resp, nil
}

func (h *QueryParamsHandler) readItemRequiredAndOptionalParams(c echo.Context, args binding.Args) (any, error) {
	resp := ItemPaginationResponse{
		ItemID: args.String("item_id"),
		Needy:  args.String("needy"),
		Skip:   args.Int("skip"),
	}
	// limit has no default: absent stays null in the response.
	if v, ok := args.Lookup("limit"); ok {
		limit := v.(int)
		resp.Limit = &limit
	}
	return resp, nil
}

func (h *QueryParamsHandler) readUserItem(c echo.Context, args binding.Args) (any, error) {
	resp := UserItemResponse{
		ItemID:  args.String("item_id"),
		OwnerID: args.Int("user_id"),
		Q:       args.String("q"),
	}
	if !args.Bool("short") {
		resp.Description = longDescription
	}
	return resp, nil
}
