// Package middleware contains the HTTP middleware stack.
//
// It covers request correlation (request IDs), request-scoped logging,
// Prometheus metrics, and the global error handler that funnels every
// error (binding failures, unknown routes, panics) into one consistent
// JSON shape.
package middleware
