// Package repository holds the service's data sources.
//
// The only data source in this demo is an immutable in-memory item list,
// consulted read-only by slicing. The package still follows the
// repository shape so handlers never touch raw data directly, and so a
// real store could replace the mock list without changing the HTTP layer.
package repository
