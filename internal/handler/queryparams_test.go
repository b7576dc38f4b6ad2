package handler

import (
	"net/http"
	"testing"

	"github.com/paramtour/paramtour/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListItemsPagination(t *testing.T) {
	e := newTestRouter(t)

	cases := []struct {
		target string
		want   []string
	}{
		{"/items/", []string{"Foo", "Bar", "Thirt"}},
		{"/items/?skip=1&limit=1", []string{"Bar"}},
		{"/items/?skip=2", []string{"Thirt"}},
		{"/items/?skip=5", []string{}},
		{"/items/?limit=0", []string{}},
	}

	for _, tc := range cases {
		rec := doJSON(t, e, http.MethodGet, tc.target, "")
		require.Equal(t, http.StatusOK, rec.Code, tc.target)

		var items []repository.ItemRecord
		decodeBody(t, rec, &items)

		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.ItemName)
		}
		assert.Equal(t, tc.want, names, tc.target)
	}
}

func TestListItemsRejectsNonIntegerSkip(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/items/?skip=abc", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp validationResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Detail, 1)
	assert.Equal(t, []string{"query", "skip"}, resp.Detail[0].Location)
}

func TestOptionalQueryParamEcho(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/items-optional-param/foo?q=somequery", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_id":"foo","q":"somequery"}`, rec.Body.String())

	// Without q the field is omitted entirely.
	rec = doJSON(t, e, http.MethodGet, "/items-optional-param/foo", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_id":"foo"}`, rec.Body.String())
}

func TestRequiredQueryParam(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/items-required-query-param/foo?needy=sooooneedy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_id":"foo","needy":"sooooneedy"}`, rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/items-required-query-param/foo", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp validationResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Detail, 1)
	assert.Equal(t, []string{"query", "needy"}, resp.Detail[0].Location)
	assert.Equal(t, "field required", resp.Detail[0].Message)
	assert.Equal(t, "missing", resp.Detail[0].Kind)
}

func TestOptionalQueryAndBoolParam(t *testing.T) {
	e := newTestRouter(t)

	// Default short=false includes the long description.
	rec := doJSON(t, e, http.MethodGet, "/items-optional-query-and-bool-param/foo", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ItemDetailResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, longDescription, resp.Description)

	// Any true spelling strconv accepts suppresses it.
	for _, target := range []string{
		"/items-optional-query-and-bool-param/foo?short=true",
		"/items-optional-query-and-bool-param/foo?short=1",
		"/items-optional-query-and-bool-param/foo?short=True",
	} {
		rec := doJSON(t, e, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		var resp ItemDetailResponse
		decodeBody(t, rec, &resp)
		assert.Empty(t, resp.Description, target)
	}
}

func TestRequiredAndOptionalParamsMix(t *testing.T) {
	e := newTestRouter(t)

	// limit has no default, so an absent limit serializes as null.
	rec := doJSON(t, e, http.MethodGet, "/items-required-and-optional-params/foo?needy=yes&skip=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_id":"foo","needy":"yes","skip":3,"limit":null}`, rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/items-required-and-optional-params/foo?needy=yes&limit=7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_id":"foo","needy":"yes","skip":0,"limit":7}`, rec.Body.String())
}

func TestUserItemCombinesPathAndQuery(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/users/5/items/foo?q=somequery&short=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_id":"foo","owner_id":5,"q":"somequery"}`, rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/users/5/items/foo", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp UserItemResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 5, resp.OwnerID)
	assert.Equal(t, longDescription, resp.Description)
}
