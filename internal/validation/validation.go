// Package validation contains the logic for validating
// request-body data.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and extracts
// validation errors into the same detail format the parameter
// binder produces, so path, query and body failures aggregate
// into one response.
package validation
