package errs

import "strings"

// ValidationDetail describes a single binding/validation failure.
//
// Location identifies where the offending value came from, as a path:
// e.g. ["query", "q"] or ["body", "price"]. Kind is a stable
// machine-readable error kind ("missing", "type_error", "too_short", ...).
// Context carries the constraint values that were violated, e.g.
// {"min_length": 3}.
type ValidationDetail struct {
	Location []string       `json:"loc"`
	Message  string         `json:"msg"`
	Kind     string         `json:"type"`
	Context  map[string]any `json:"ctx,omitempty"`
}

// Error kinds produced by parameter binding. These are part of the wire
// contract, clients key on them.
const (
	KindMissing         = "missing"
	KindTypeError       = "type_error"
	KindTooShort        = "too_short"
	KindTooLong         = "too_long"
	KindPatternMismatch = "pattern_mismatch"
	KindEnum            = "enum"
	KindValueError      = "value_error"
)

// Parameter locations used in ValidationDetail.Location.
const (
	LocationPath  = "path"
	LocationQuery = "query"
	LocationBody  = "body"
)

// HTTPError is the main custom error type for API responses.
//
// It implements the error interface via Error() and is designed to be
// serialized directly to JSON. For validation failures (422) the Detail
// list carries one entry per unmet constraint; the response body is then
// {"detail": [...]} rather than the generic envelope.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Detail holds parameter-level validation errors, in declaration order.
	Detail []ValidationDetail `json:"detail,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is treats HTTPError: it matches any other
// *HTTPError, not a particular code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced,
// leaving the original untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Detail:  e.Detail,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Not Found" -> "NOT_FOUND"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
