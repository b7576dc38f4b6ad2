package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that runs Struct(req)
//   - Return the error unmodified so BindBody can extract field details
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance. Field names in errors are
// taken from the json tag so details reference wire names, not Go names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct runs tag-based validation on a request payload.
func Struct(payload any) error {
	return validate.Struct(payload)
}

// BindBody decodes the JSON request body into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from the request body.
//  2. payload.Validate() applies the struct's validator tags.
//  3. Any failure is returned as a detail list with ["body", field]
//     locations, ready to be merged with binder output.
//
// NOTE: payload must be a pointer so c.Bind can mutate it.
func BindBody(c echo.Context, payload Validatable) []errs.ValidationDetail {
	if err := c.Bind(payload); err != nil {
		// Malformed JSON or a JSON value of the wrong type. Echo wraps the
		// decoder error; the body as a whole is the failing location.
		return []errs.ValidationDetail{{
			Location: []string{errs.LocationBody},
			Message:  "request body is not valid JSON for the declared schema",
			Kind:     errs.KindTypeError,
		}}
	}

	if err := payload.Validate(); err != nil {
		return extractValidationDetails(err)
	}

	return nil
}

// extractValidationDetails converts validator errors into wire details.
func extractValidationDetails(err error) []errs.ValidationDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []errs.ValidationDetail{{
			Location: []string{errs.LocationBody},
			Message:  err.Error(),
			Kind:     errs.KindValueError,
		}}
	}

	details := make([]errs.ValidationDetail, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		detail := errs.ValidationDetail{
			Location: []string{errs.LocationBody, fieldErr.Field()},
		}

		switch fieldErr.Tag() {
		case "required":
			detail.Message = "field required"
			detail.Kind = errs.KindMissing

		case "min":
			if fieldErr.Type().Kind() == reflect.String {
				detail.Message = fmt.Sprintf("ensure this value has at least %s characters", fieldErr.Param())
				detail.Kind = errs.KindTooShort
				detail.Context = map[string]any{"min_length": fieldErr.Param()}
			} else {
				detail.Message = fmt.Sprintf("ensure this value is at least %s", fieldErr.Param())
				detail.Kind = errs.KindValueError
			}

		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				detail.Message = fmt.Sprintf("ensure this value has at most %s characters", fieldErr.Param())
				detail.Kind = errs.KindTooLong
				detail.Context = map[string]any{"max_length": fieldErr.Param()}
			} else {
				detail.Message = fmt.Sprintf("ensure this value is at most %s", fieldErr.Param())
				detail.Kind = errs.KindValueError
			}

		case "oneof":
			detail.Message = fmt.Sprintf("value must be one of: %s", fieldErr.Param())
			detail.Kind = errs.KindEnum

		default:
			if fieldErr.Param() != "" {
				detail.Message = fmt.Sprintf("failed %s:%s validation", fieldErr.Tag(), fieldErr.Param())
			} else {
				detail.Message = fmt.Sprintf("failed %s validation", fieldErr.Tag())
			}
			detail.Kind = errs.KindValueError
		}

		details = append(details, detail)
	}

	return details
}
