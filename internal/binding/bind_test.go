package binding

import (
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContext builds an Echo context for a GET request with the given
// query string ("" for none) and path parameter pairs.
func newContext(t *testing.T, query string, pathParams map[string]string) echo.Context {
	t.Helper()

	target := "/"
	if query != "" {
		target += "?" + query
	}

	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(pathParams))
	values := make([]string, 0, len(pathParams))
	for k, v := range pathParams {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c
}

func TestBindIntCoercion(t *testing.T) {
	c := newContext(t, "", map[string]string{"item_id": "42"})

	args, details := Bind(c, []Param{
		{Name: "item_id", Source: SourcePath, Kind: KindInt, Required: true},
	})

	require.Empty(t, details)
	assert.Equal(t, 42, args.Int("item_id"))
}

func TestBindIntTypeError(t *testing.T) {
	c := newContext(t, "", map[string]string{"item_id": "not-a-number"})

	_, details := Bind(c, []Param{
		{Name: "item_id", Source: SourcePath, Kind: KindInt, Required: true},
	})

	require.Len(t, details, 1)
	assert.Equal(t, errs.KindTypeError, details[0].Kind)
	assert.Equal(t, []string{"path", "item_id"}, details[0].Location)
}

func TestBindMissingRequired(t *testing.T) {
	c := newContext(t, "", nil)

	_, details := Bind(c, []Param{
		{Name: "needy", Source: SourceQuery, Kind: KindString, Required: true},
	})

	require.Len(t, details, 1)
	assert.Equal(t, errs.KindMissing, details[0].Kind)
	assert.Equal(t, []string{"query", "needy"}, details[0].Location)
	assert.Equal(t, "field required", details[0].Message)
}

func TestBindDefaultsFillAbsentOptionals(t *testing.T) {
	c := newContext(t, "", nil)

	args, details := Bind(c, []Param{
		{Name: "skip", Source: SourceQuery, Kind: KindInt, Default: 0},
		{Name: "limit", Source: SourceQuery, Kind: KindInt, Default: 10},
		{Name: "q", Source: SourceQuery, Kind: KindString},
	})

	require.Empty(t, details)
	assert.Equal(t, 0, args.Int("skip"))
	assert.Equal(t, 10, args.Int("limit"))
	assert.False(t, args.Has("q"))
}

func TestBindSuppliedValueOverridesDefault(t *testing.T) {
	c := newContext(t, "skip=2", nil)

	args, details := Bind(c, []Param{
		{Name: "skip", Source: SourceQuery, Kind: KindInt, Default: 0},
	})

	require.Empty(t, details)
	assert.Equal(t, 2, args.Int("skip"))
}

func TestBindLengthBoundsInclusive(t *testing.T) {
	param := Param{Name: "q", Source: SourceQuery, Kind: KindString, MinLength: 3, MaxLength: 5}

	cases := []struct {
		value string
		kind  string
	}{
		{"ab", errs.KindTooShort},
		{"abc", ""},
		{"abcde", ""},
		{"abcdef", errs.KindTooLong},
	}

	for _, tc := range cases {
		c := newContext(t, "q="+tc.value, nil)
		_, details := Bind(c, []Param{param})

		if tc.kind == "" {
			assert.Empty(t, details, "value %q should pass", tc.value)
		} else {
			require.Len(t, details, 1, "value %q should fail", tc.value)
			assert.Equal(t, tc.kind, details[0].Kind)
		}
	}
}

func TestBindLengthContext(t *testing.T) {
	c := newContext(t, "q=ab", nil)

	_, details := Bind(c, []Param{
		{Name: "q", Source: SourceQuery, Kind: KindString, MinLength: 3},
	})

	require.Len(t, details, 1)
	assert.Equal(t, map[string]any{"min_length": 3}, details[0].Context)
}

func TestBindPatternFullStringMatch(t *testing.T) {
	param := Param{
		Name:    "q",
		Source:  SourceQuery,
		Kind:    KindString,
		Pattern: regexp.MustCompile(`^fixedquery$`),
	}

	c := newContext(t, "q=fixedquery", nil)
	args, details := Bind(c, []Param{param})
	require.Empty(t, details)
	assert.Equal(t, "fixedquery", args.String("q"))

	for _, bad := range []string{"nonregexquery", "fixedquery2", "afixedquery"} {
		c := newContext(t, "q="+bad, nil)
		_, details := Bind(c, []Param{param})
		require.Len(t, details, 1, "value %q should fail", bad)
		assert.Equal(t, errs.KindPatternMismatch, details[0].Kind)
	}
}

func TestBindUnanchoredPatternStillFullMatch(t *testing.T) {
	param := Param{
		Name:    "q",
		Source:  SourceQuery,
		Kind:    KindString,
		Pattern: regexp.MustCompile(`fixed`),
	}

	c := newContext(t, "q=prefixfixed", nil)
	_, details := Bind(c, []Param{param})
	require.Len(t, details, 1)
	assert.Equal(t, errs.KindPatternMismatch, details[0].Kind)

	c = newContext(t, "q=fixed", nil)
	_, details = Bind(c, []Param{param})
	assert.Empty(t, details)
}

func TestBindAlias(t *testing.T) {
	param := Param{Name: "q", Source: SourceQuery, Kind: KindString, Alias: "item-query"}

	// The alias is the wire name.
	c := newContext(t, "item-query=foo", nil)
	args, details := Bind(c, []Param{param})
	require.Empty(t, details)
	assert.Equal(t, "foo", args.String("q"))

	// The declared name is not consulted on the wire.
	c = newContext(t, "q=foo", nil)
	args, details = Bind(c, []Param{param})
	require.Empty(t, details)
	assert.False(t, args.Has("q"))
}

func TestBindStringListCollectsAllOccurrences(t *testing.T) {
	param := Param{Name: "q", Source: SourceQuery, Kind: KindStringList, Default: []string{"foo", "bar"}}

	c := newContext(t, "q=first&q=second&q=third", nil)
	args, details := Bind(c, []Param{param})
	require.Empty(t, details)
	assert.Equal(t, []string{"first", "second", "third"}, args.StringList("q"))

	// No occurrence falls back to the declared default list.
	c = newContext(t, "", nil)
	args, details = Bind(c, []Param{param})
	require.Empty(t, details)
	assert.Equal(t, []string{"foo", "bar"}, args.StringList("q"))
}

func TestBindEnumExactMatch(t *testing.T) {
	param := Param{Name: "model_name", Source: SourcePath, Kind: KindEnum, Required: true, Enum: []string{"alexnet", "resnet", "lenet"}}

	c := newContext(t, "", map[string]string{"model_name": "resnet"})
	args, details := Bind(c, []Param{param})
	require.Empty(t, details)
	assert.Equal(t, "resnet", args.String("model_name"))

	// Case-sensitive: "AlexNet" is not a variant.
	for _, bad := range []string{"AlexNet", "vgg16", ""} {
		c := newContext(t, "", map[string]string{"model_name": bad})
		_, details := Bind(c, []Param{param})
		require.Len(t, details, 1, "value %q should fail", bad)
	}
}

func TestBindBool(t *testing.T) {
	param := Param{Name: "short", Source: SourceQuery, Kind: KindBool, Default: false}

	c := newContext(t, "short=true", nil)
	args, details := Bind(c, []Param{param})
	require.Empty(t, details)
	assert.True(t, args.Bool("short"))

	c = newContext(t, "short=banana", nil)
	_, details = Bind(c, []Param{param})
	require.Len(t, details, 1)
	assert.Equal(t, errs.KindTypeError, details[0].Kind)
}

func TestBindFloat(t *testing.T) {
	c := newContext(t, "price=45.2", nil)

	args, details := Bind(c, []Param{
		{Name: "price", Source: SourceQuery, Kind: KindFloat, Required: true},
	})

	require.Empty(t, details)
	assert.InDelta(t, 45.2, args.Float("price"), 1e-9)
}

func TestBindGreedyPathParam(t *testing.T) {
	c := newContext(t, "", map[string]string{"*": "home/johndoe/myfile.txt"})

	args, details := Bind(c, []Param{
		{Name: "file_path", Source: SourcePath, Kind: KindString, Required: true, Greedy: true},
	})

	require.Empty(t, details)
	assert.Equal(t, "home/johndoe/myfile.txt", args.String("file_path"))
}

func TestBindAggregatesAllFailures(t *testing.T) {
	c := newContext(t, "q=ab", map[string]string{"item_id": "oops"})

	_, details := Bind(c, []Param{
		{Name: "item_id", Source: SourcePath, Kind: KindInt, Required: true},
		{Name: "needy", Source: SourceQuery, Kind: KindString, Required: true},
		{Name: "q", Source: SourceQuery, Kind: KindString, MinLength: 3},
	})

	// All three failures reported, in declaration order.
	require.Len(t, details, 3)
	assert.Equal(t, errs.KindTypeError, details[0].Kind)
	assert.Equal(t, errs.KindMissing, details[1].Kind)
	assert.Equal(t, errs.KindTooShort, details[2].Kind)
}

func TestBindSkipsBodyFieldDescriptors(t *testing.T) {
	c := newContext(t, "", nil)

	args, details := Bind(c, []Param{
		{Name: "price", Source: SourceBody, Kind: KindFloat, Required: true},
	})

	assert.Empty(t, details)
	assert.False(t, args.Has("price"))
}

func TestWireName(t *testing.T) {
	assert.Equal(t, "q", Param{Name: "q"}.WireName())
	assert.Equal(t, "item-query", Param{Name: "q", Alias: "item-query"}.WireName())
}
