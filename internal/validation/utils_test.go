package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemPayload struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

func (p *itemPayload) Validate() error {
	return Struct(p)
}

func bindContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindBodyValid(t *testing.T) {
	c := bindContext(t, `{"name":"Foo","price":45.2}`)

	payload := &itemPayload{}
	details := BindBody(c, payload)

	assert.Empty(t, details)
	assert.Equal(t, "Foo", payload.Name)
	require.NotNil(t, payload.Price)
	assert.InDelta(t, 45.2, *payload.Price, 1e-9)
}

func TestBindBodyMissingFieldsUseJSONNames(t *testing.T) {
	c := bindContext(t, `{}`)

	details := BindBody(c, &itemPayload{})

	require.Len(t, details, 2)
	assert.Equal(t, []string{errs.LocationBody, "name"}, details[0].Location)
	assert.Equal(t, errs.KindMissing, details[0].Kind)
	assert.Equal(t, "field required", details[0].Message)
	assert.Equal(t, []string{errs.LocationBody, "price"}, details[1].Location)
}

func TestBindBodyMalformedJSON(t *testing.T) {
	c := bindContext(t, `{"name":`)

	details := BindBody(c, &itemPayload{})

	require.Len(t, details, 1)
	assert.Equal(t, []string{errs.LocationBody}, details[0].Location)
	assert.Equal(t, errs.KindTypeError, details[0].Kind)
}

func TestBindBodyWrongFieldType(t *testing.T) {
	c := bindContext(t, `{"name":"Foo","price":"not-a-number"}`)

	details := BindBody(c, &itemPayload{})

	require.Len(t, details, 1)
	assert.Equal(t, []string{errs.LocationBody}, details[0].Location)
	assert.Equal(t, errs.KindTypeError, details[0].Kind)
}
