// Package handler is the first layer. The first entry point
// after the router.
//
// Each handler pairs a declarative route descriptor (method, path,
// parameter table) with a function of the bound, validated arguments.
// Binding and constraint checking happen in the shared pipeline before
// the function runs; a handler can therefore not fail on input shape,
// only assemble its response.
package handler
