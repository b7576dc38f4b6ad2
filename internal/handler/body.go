package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/server"
	"github.com/paramtour/paramtour/internal/validation"
)

// requestUser is the fixed placeholder identity stamped onto body
// responses; there is no authentication in this service.
const requestUser = "Test User"

// timestampLayout matches the original wire format for creation/edit
// stamps, e.g. "2022-05-23 02:45:45.893837".
const timestampLayout = "2006-01-02 15:04:05.000000"

// BodyHandler demonstrates JSON request bodies, alone and combined with
// path and query parameters.
type BodyHandler struct {
	Handler

	// now is the clock used for create/edit stamps; swapped in tests.
	now func() time.Time
}

// NewBodyHandler constructs a BodyHandler with access to shared
// dependencies.
func NewBodyHandler(s *server.Server) *BodyHandler {
	return &BodyHandler{
		Handler: NewHandler(s),
		now:     time.Now,
	}
}

// Item is the request-body schema: name and price are required,
// description and tax are optional. Pointer fields distinguish "absent"
// from a zero value.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
}

// Validate applies the struct's validator tags.
func (i *Item) Validate() error {
	return validation.Struct(i)
}

// priceWithTax computes price + tax when a non-zero tax was supplied,
// plain price otherwise.
func (i *Item) priceWithTax() float64 {
	price := *i.Price
	if i.Tax != nil && *i.Tax != 0 {
		return price + *i.Tax
	}
	return price
}

// CreatedItemResponse echoes the accepted body plus the computed total
// and a creation stamp.
type CreatedItemResponse struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	Tax          *float64 `json:"tax"`
	PriceWithTax float64  `json:"price_with_tax"`
	CreateTime   string   `json:"create_time"`
	CreateUser   string   `json:"create_user"`
}

// UpdatedItemResponse is the same transform for update routes: the path
// id is merged in and the stamp becomes a last-edit one. Q only appears
// on the route that declares the query parameter, and only when it was
// supplied.
type UpdatedItemResponse struct {
	ItemID       int      `json:"item_id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	Tax          *float64 `json:"tax"`
	PriceWithTax float64  `json:"price_with_tax"`
	Q            *string  `json:"q,omitempty"`
	LastEditTime string   `json:"last_edit_time"`
	LastEditUser string   `json:"last_edit_user"`
}

// itemBodyFields is the body's descriptor set, carried on each body route
// for the schema document; decoding and validation run through the
// validation package, not the binder.
func itemBodyFields() []binding.Param {
	return []binding.Param{
		{Name: "name", Source: binding.SourceBody, Kind: binding.KindString, Required: true},
		{Name: "description", Source: binding.SourceBody, Kind: binding.KindString},
		{Name: "price", Source: binding.SourceBody, Kind: binding.KindFloat, Required: true},
		{Name: "tax", Source: binding.SourceBody, Kind: binding.KindFloat},
	}
}

// Entries returns the handler's routes in declaration order.
func (h *BodyHandler) Entries() []Entry {
	createRoute := binding.Route{
		Method:     http.MethodPost,
		Path:       "/items/",
		Summary:    "Create an item from a JSON body",
		BodySchema: "Item",
		Params:     itemBodyFields(),
	}

	updateRoute := binding.Route{
		Method:     http.MethodPut,
		Path:       "/items-request-body-path-params/:item_id",
		Summary:    "Update an item: path parameter and JSON body together",
		BodySchema: "Item",
		Params: append([]binding.Param{
			{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindInt, Required: true},
		}, itemBodyFields()...),
	}

	updateWithQueryRoute := binding.Route{
		Method:     http.MethodPut,
		Path:       "/items-request-body-path-query-params/:item_id",
		Summary:    "Update an item: path, query, and JSON body together",
		BodySchema: "Item",
		Params: append([]binding.Param{
			{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindInt, Required: true},
			{Name: "q", Source: binding.SourceQuery, Kind: binding.KindString},
		}, itemBodyFields()...),
	}

	return []Entry{
		{Route: createRoute, Func: HandleWithBody(h.Handler, createRoute, http.StatusOK, newItem, h.createItem)},
		{Route: updateRoute, Func: HandleWithBody(h.Handler, updateRoute, http.StatusOK, newItem, h.updateItem)},
		{Route: updateWithQueryRoute, Func: HandleWithBody(h.Handler, updateWithQueryRoute, http.StatusOK, newItem, h.updateItemWithQuery)},
	}
}

func newItem() *Item { return &Item{} }

func (h *BodyHandler) createItem(c echo.Context, args binding.Args, item *Item) (any, error) {
	return CreatedItemResponse{
		Name:         item.Name,
		Description:  item.Description,
		Price:        *item.Price,
		Tax:          item.Tax,
		PriceWithTax: item.priceWithTax(),
		CreateTime:   h.now().Format(timestampLayout),
		CreateUser:   requestUser,
	}, nil
}

func (h *BodyHandler) updateItem(c echo.Context, args binding.Args, item *Item) (any, error) {
	return UpdatedItemResponse{
		ItemID:       args.Int("item_id"),
		Name:         item.Name,
		Description:  item.Description,
		Price:        *item.Price,
		Tax:          item.Tax,
		PriceWithTax: item.priceWithTax(),
		LastEditTime: h.now().Format(timestampLayout),
		LastEditUser: requestUser,
	}, nil
}

func (h *BodyHandler) updateItemWithQuery(c echo.Context, args binding.Args, item *Item) (any, error) {
	resp := UpdatedItemResponse{
		ItemID:       args.Int("item_id"),
		Name:         item.Name,
		Description:  item.Description,
		Price:        *item.Price,
		Tax:          item.Tax,
		PriceWithTax: item.priceWithTax(),
		LastEditTime: h.now().Format(timestampLayout),
		LastEditUser: requestUser,
	}
	if q, ok := args.Lookup("q"); ok {
		s := q.(string)
		resp.Q = &s
	}
	return resp, nil
}
