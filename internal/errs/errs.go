// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. ValidationDetail lists for parameter binding or HTTPError
// for API responses) so the client always receives a consistent,
// machine-readable error shape.
package errs
