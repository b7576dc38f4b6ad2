package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/binding"
	"github.com/paramtour/paramtour/internal/server"
)

// PathParamsHandler demonstrates binding values from named path segments:
// typed segments, a literal segment shadowing a variable one, a closed
// enum segment, and a greedy capture spanning "/" separators.
type PathParamsHandler struct {
	Handler
}

// NewPathParamsHandler constructs a PathParamsHandler with access to
// shared dependencies.
func NewPathParamsHandler(s *server.Server) *PathParamsHandler {
	return &PathParamsHandler{Handler: NewHandler(s)}
}

// ModelName is the closed set of model variants accepted by /models.
// Any other path segment names no variant and resolves to not-found.
type ModelName string

const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)

// ModelNames lists the declared variants for the route descriptor.
func ModelNames() []string {
	return []string{string(ModelAlexNet), string(ModelResNet), string(ModelLeNet)}
}

// ItemIDResponse echoes the bound integer id.
type ItemIDResponse struct {
	ItemID int `json:"item_id"`
}

// UserResponse echoes the bound (or fixed) user id.
type UserResponse struct {
	UserID string `json:"user_id"`
}

// ModelResponse pairs the matched variant with its message.
type ModelResponse struct {
	ModelName ModelName `json:"model_name"`
	Message   string    `json:"message"`
}

// FilePathResponse echoes the greedily captured path remainder.
type FilePathResponse struct {
	FilePath string `json:"file_path"`
}

// Entries returns the handler's routes in declaration order.
//
// Order matters: /users/me must be declared before /users/:user_id, or a
// first-match router would bind user_id="me" and the literal route would
// be unreachable.
func (h *PathParamsHandler) Entries() []Entry {
	return []Entry{
		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/items/:item_id",
			Summary: "Read an item by integer id",
			Params: []binding.Param{
				{Name: "item_id", Source: binding.SourcePath, Kind: binding.KindInt, Required: true},
			},
		}, h.readItem),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/users/me",
			Summary: "Read the current user",
		}, h.readUserMe),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/users/:user_id",
			Summary: "Read a user by id",
			Params: []binding.Param{
				{Name: "user_id", Source: binding.SourcePath, Kind: binding.KindString, Required: true},
			},
		}, h.readUser),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/models/:model_name",
			Summary: "Dispatch on a closed enum of model names",
			Params: []binding.Param{
				{Name: "model_name", Source: binding.SourcePath, Kind: binding.KindEnum, Required: true, Enum: ModelNames()},
			},
		}, h.getModel),

		h.entry(binding.Route{
			Method:  http.MethodGet,
			Path:    "/files/*",
			Summary: "Read a file by pseudo-filesystem path",
			Params: []binding.Param{
				{Name: "file_path", Source: binding.SourcePath, Kind: binding.KindString, Required: true, Greedy: true},
			},
		}, h.readFile),
	}
}

func (h *PathParamsHandler) readItem(c echo.Context, args binding.Args) (any, error) {
	return ItemIDResponse{ItemID: args.Int("item_id")}, nil
}

func (h *PathParamsHandler) readUserMe(c echo.Context, args binding.Args) (any, error) {
	return UserResponse{UserID: "the current user"}, nil
}

func (h *PathParamsHandler) readUser(c echo.Context, args binding.Args) (any, error) {
	return UserResponse{UserID: args.String("user_id")}, nil
}

func (h *PathParamsHandler) getModel(c echo.Context, args binding.Args) (any, error) {
	model := ModelName(args.String("model_name"))

	switch model {
	case ModelAlexNet:
		return ModelResponse{ModelName: model, Message: "Deep Learning FTW!"}, nil
	case ModelLeNet:
		return ModelResponse{ModelName: model, Message: "LeCNN all the images"}, nil
	default:
		// The binder guarantees membership, so the remaining variant is
		// resnet.
		return ModelResponse{ModelName: model, Message: "Have some residuals"}, nil
	}
}

func (h *PathParamsHandler) readFile(c echo.Context, args binding.Args) (any, error) {
	return FilePathResponse{FilePath: args.String("file_path")}, nil
}
