package errs

import (
	"net/http"
)

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports an optional custom code override; when code is nil the code is
// derived from the HTTP status text ("NOT_FOUND").
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Used for malformed requests that never reach parameter binding,
// e.g. a request body that is not valid JSON at all.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewValidationError creates a 422 Unprocessable Entity HTTPError carrying
// the aggregated binding failures.
//
// The detail slice preserves the order in which parameters were declared;
// binding never short-circuits on the first failure, so clients see every
// unmet constraint at once.
func NewValidationError(detail []ValidationDetail) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Message: "Validation failed",
		Status:  http.StatusUnprocessableEntity,
		Detail:  detail,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error:
// clients don't need stack traces.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
