// Package binding implements declarative request-parameter binding.
//
// Each route carries an ordered table of Param descriptors declaring where
// a value comes from (path segment, query string, body field), its primitive
// type, whether it is required, and an optional constraint set (length
// bounds, pattern, enum variants, alias, deprecation, schema visibility).
//
// A generic binder resolves the whole table against an incoming request and
// produces either a fully-typed argument set or an aggregated list of
// validation failures. Binding is total: every declared parameter either
// resolves to a value (from the request or its default) or the request is
// rejected before the handler runs. There is no partial bind.
package binding

import "regexp"

// Source says where a parameter's value is taken from.
type Source string

const (
	SourcePath  Source = "path"
	SourceQuery Source = "query"

	// SourceBody marks body-field descriptors. These are carried in the
	// table for the schema document only; the actual body is decoded and
	// validated by the validation package, not by the binder.
	SourceBody Source = "body"
)

// Kind is the primitive type a parameter is coerced to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool

	// KindEnum is a string restricted to a closed variant set.
	KindEnum

	// KindStringList collects every occurrence of the (aliased) name in
	// the query string, preserving repetition order.
	KindStringList
)

// String returns the schema-document name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindStringList:
		return "array[string]"
	default:
		return "string"
	}
}

// Param is the descriptor for a single declared parameter.
//
// Optionality is a single Required flag: a required parameter carries no
// default and its absence is a binding failure. Defaults only apply to
// optional parameters; a nil Default means "optional with no value", which
// handlers observe through Args.Lookup.
type Param struct {
	Name     string
	Source   Source
	Kind     Kind
	Required bool

	// Default is the value bound when the request carries no occurrence
	// of the parameter. Its dynamic type must match Kind
	// (string/int/float64/bool/[]string).
	Default any

	// Alias, when set, is the wire name consulted in the request instead
	// of Name. The bound value is still exposed under Name.
	Alias string

	// Greedy marks a path parameter that captures the remainder of the
	// path, including "/" separators. Only valid as the final segment.
	Greedy bool

	// String constraints. Length bounds are inclusive; zero means unset
	// (a declared min_length of zero would be a no-op anyway).
	MinLength int
	MaxLength int

	// Pattern must match the entire decoded string, not a substring.
	Pattern *regexp.Regexp

	// Enum lists the closed variant set for KindEnum parameters. Matching
	// is exact and case-sensitive.
	Enum []string

	// Deprecated marks the parameter as deprecated in the schema document.
	// Supplying it still binds normally; the server logs a warning.
	Deprecated bool

	// Hidden excludes the parameter from the schema document. It never
	// affects runtime binding.
	Hidden bool
}

// WireName is the name the request is consulted under: the alias when one
// is declared, the parameter name otherwise.
func (p Param) WireName() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Name
}

// Route pairs an HTTP method and an Echo path template with the parameter
// table the binder runs for it. Routes are held in an ordered table and
// registered in declaration order: a literal segment route (/users/me) must
// be declared before a variable one (/users/:user_id) to be reachable.
type Route struct {
	Method  string
	Path    string
	Summary string
	Params  []Param

	// BodySchema names the request-body model, when the route takes one.
	// The body's fields appear in Params with SourceBody.
	BodySchema string
}
