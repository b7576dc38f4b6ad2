package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/config"
	"github.com/paramtour/paramtour/internal/middleware"
	"github.com/paramtour/paramtour/internal/repository"
	"github.com/paramtour/paramtour/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testClock is the fixed time injected into the body handler so stamp
// assertions are deterministic.
var testClock = time.Date(2022, 5, 23, 2, 45, 45, 893837000, time.UTC)

// newTestRouter wires the handler groups onto a bare Echo instance with
// the global error handler, bypassing the full middleware stack. The
// handler pipeline falls back to a no-op logger when no request-scoped
// one was installed.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.Default()
	log := zerolog.Nop()
	srv := server.New(cfg, &log)
	repos := repository.NewRepositories()

	handlers := NewHandlers(srv, repos)
	handlers.Body.now = func() time.Time { return testClock }

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(srv).GlobalErrorHandler

	for _, entry := range handlers.Entries() {
		e.Add(entry.Route.Method, entry.Route.Path, entry.Func)
	}

	return e
}

// doJSON performs a request against the wired router. A non-empty body
// is sent as application/json.
func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// errorDetail is the client-side view of one entry in a 422 detail list.
type errorDetail struct {
	Location []string       `json:"loc"`
	Message  string         `json:"msg"`
	Kind     string         `json:"type"`
	Context  map[string]any `json:"ctx"`
}

// validationResponse is the aggregated 422 wire shape.
type validationResponse struct {
	Detail []errorDetail `json:"detail"`
}

// errorEnvelope is the generic non-422 error wire shape.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
