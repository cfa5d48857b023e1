package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	NewHandler().Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleProductsNormalize(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	payload := `[
		{"id": "a", "name": "First", "price": {"current": 1}},
		{"name": "rejected, no id"},
		{"id": "b", "name": "Second", "pricing": {"salePrice": 2, "basePrice": 3}}
	]`

	resp, err := http.Post(srv.URL+"/products/normalize", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Items    []Product `json:"items"`
		Accepted int       `json:"accepted"`
		Rejected int       `json:"rejected"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, 2, got.Accepted)
	require.Equal(t, 1, got.Rejected)
	require.Len(t, got.Items, 2)
	require.Equal(t, "a", got.Items[0].ID)
	require.Equal(t, "b", got.Items[1].ID)
}

func TestHandleProductsNormalizeSingleObject(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/products/normalize", "application/json",
		strings.NewReader(`{"id": "a", "name": "Solo", "price": {"current": 9}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got struct {
		Accepted int `json:"accepted"`
		Rejected int `json:"rejected"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, 1, got.Accepted)
	require.Equal(t, 0, got.Rejected)
}

func TestHandleProductsNormalizeMalformedBodyIsEmptyResult(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/products/normalize", "application/json", strings.NewReader(`"nonsense"`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Items    []Product `json:"items"`
		Accepted int       `json:"accepted"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Empty(t, got.Items)
	require.Zero(t, got.Accepted)
}

func TestHandleStoresNormalize(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	payload := `[
		{"id": "s1", "name": "Corner Shop", "rating": {"value": 4.6, "count": 80}},
		{"id": "s2"}
	]`

	resp, err := http.Post(srv.URL+"/stores/normalize", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got struct {
		Items    []Store `json:"items"`
		Accepted int     `json:"accepted"`
		Rejected int     `json:"rejected"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, 1, got.Accepted)
	require.Equal(t, 1, got.Rejected)
	require.True(t, got.Items[0].IsTopRated)
}
