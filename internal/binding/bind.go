package binding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/errs"
)

// Args is the fully-typed result of a successful bind.
//
// Values are stored under the declared parameter name (never the alias).
// Optional parameters without a default and absent from the request have
// no entry; handlers distinguish that through Lookup.
type Args struct {
	values map[string]any
}

// Lookup returns the bound value and whether the parameter resolved at all.
func (a Args) Lookup(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether the parameter resolved to a value.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns the bound string value, or "" when absent.
func (a Args) String(name string) string {
	v, _ := a.values[name].(string)
	return v
}

// Int returns the bound integer value, or 0 when absent.
func (a Args) Int(name string) int {
	v, _ := a.values[name].(int)
	return v
}

// Float returns the bound float value, or 0 when absent.
func (a Args) Float(name string) float64 {
	v, _ := a.values[name].(float64)
	return v
}

// Bool returns the bound boolean value, or false when absent.
func (a Args) Bool(name string) bool {
	v, _ := a.values[name].(bool)
	return v
}

// StringList returns the bound list value, or nil when absent.
func (a Args) StringList(name string) []string {
	v, _ := a.values[name].([]string)
	return v
}

// Bind resolves every descriptor in params against the request held by c.
//
// It returns the typed argument set and the list of validation failures,
// ordered by parameter declaration. Failures are aggregated, not
// short-circuited: a request with three bad parameters yields three detail
// entries in one response. Body-field descriptors are skipped here; the
// validation package owns body decoding.
func Bind(c echo.Context, params []Param) (Args, []errs.ValidationDetail) {
	args := Args{values: make(map[string]any, len(params))}
	var details []errs.ValidationDetail

	for _, p := range params {
		if p.Source == SourceBody {
			continue
		}

		raw, count := rawValues(c, p)

		if count == 0 {
			if p.Required {
				details = append(details, errs.ValidationDetail{
					Location: []string{string(p.Source), p.WireName()},
					Message:  "field required",
					Kind:     errs.KindMissing,
				})
				continue
			}
			if p.Default != nil {
				args.values[p.Name] = p.Default
			}
			continue
		}

		value, detail := coerce(p, raw)
		if detail != nil {
			details = append(details, *detail)
			continue
		}
		args.values[p.Name] = value
	}

	return args, details
}

// rawValues extracts the raw occurrences of p from the request. For path
// parameters count is 0 or 1; for query parameters every occurrence of the
// wire name is collected in order.
func rawValues(c echo.Context, p Param) ([]string, int) {
	switch p.Source {
	case SourcePath:
		name := p.Name
		if p.Greedy {
			// Echo exposes a wildcard capture under "*".
			name = "*"
		}
		v := c.Param(name)
		if v == "" {
			return nil, 0
		}
		return []string{v}, 1

	case SourceQuery:
		vs, ok := c.QueryParams()[p.WireName()]
		if !ok {
			return nil, 0
		}
		return vs, len(vs)
	}
	return nil, 0
}

// coerce converts the raw occurrences into the declared type and applies
// the constraint set. It returns the typed value or a single detail entry
// describing the first violated rule for this parameter.
func coerce(p Param, raw []string) (any, *errs.ValidationDetail) {
	loc := []string{string(p.Source), p.WireName()}

	switch p.Kind {
	case KindStringList:
		// Lists take every occurrence; element-level constraints apply to
		// each element in order.
		for _, item := range raw {
			if d := checkString(p, loc, item); d != nil {
				return nil, d
			}
		}
		return raw, nil

	case KindString:
		if d := checkString(p, loc, raw[0]); d != nil {
			return nil, d
		}
		return raw[0], nil

	case KindEnum:
		for _, variant := range p.Enum {
			if raw[0] == variant {
				return raw[0], nil
			}
		}
		return nil, &errs.ValidationDetail{
			Location: loc,
			Message:  fmt.Sprintf("value is not a valid enumeration member; permitted: %s", strings.Join(p.Enum, ", ")),
			Kind:     errs.KindEnum,
			Context:  map[string]any{"enum_values": p.Enum},
		}

	case KindInt:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, &errs.ValidationDetail{
				Location: loc,
				Message:  "value is not a valid integer",
				Kind:     errs.KindTypeError,
			}
		}
		return n, nil

	case KindFloat:
		f, err := strconv.ParseFloat(raw[0], 64)
		if err != nil {
			return nil, &errs.ValidationDetail{
				Location: loc,
				Message:  "value is not a valid float",
				Kind:     errs.KindTypeError,
			}
		}
		return f, nil

	case KindBool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, &errs.ValidationDetail{
				Location: loc,
				Message:  "value is not a valid boolean",
				Kind:     errs.KindTypeError,
			}
		}
		return b, nil
	}

	return raw[0], nil
}

// checkString applies the string constraint set to a decoded value.
// Length bounds are inclusive: exactly min or max characters passes.
func checkString(p Param, loc []string, value string) *errs.ValidationDetail {
	if p.MinLength > 0 && len(value) < p.MinLength {
		return &errs.ValidationDetail{
			Location: loc,
			Message:  fmt.Sprintf("ensure this value has at least %d characters", p.MinLength),
			Kind:     errs.KindTooShort,
			Context:  map[string]any{"min_length": p.MinLength},
		}
	}
	if p.MaxLength > 0 && len(value) > p.MaxLength {
		return &errs.ValidationDetail{
			Location: loc,
			Message:  fmt.Sprintf("ensure this value has at most %d characters", p.MaxLength),
			Kind:     errs.KindTooLong,
			Context:  map[string]any{"max_length": p.MaxLength},
		}
	}
	if p.Pattern != nil {
		// Full-string semantics: a substring hit is not enough, the match
		// must cover the whole decoded value.
		if m := p.Pattern.FindString(value); m != value {
			return &errs.ValidationDetail{
				Location: loc,
				Message:  fmt.Sprintf(`string does not match expected pattern "%s"`, p.Pattern.String()),
				Kind:     errs.KindPatternMismatch,
				Context:  map[string]any{"pattern": p.Pattern.String()},
			}
		}
	}
	return nil
}
