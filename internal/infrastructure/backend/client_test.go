package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ute/bookshop/internal/infrastructure/config"
	apperrors "github.com/ute/bookshop/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL
	return NewClient(cfg), srv
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u-1","fullname":"测试用户","role":"customer"}`))
	}))

	_, err := client.GetProfile(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
}

func TestClient_PublicCallOmitsAuth(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	_, err := client.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_BackendDetailSurfaced(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"库存不足"}`))
	}))

	_, err := client.CreateOrder(context.Background(), "tok", OrderCreate{})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.Equal(t, "库存不足", appErr.Message)
}

func TestClient_FallbackMessageOnUnparsableBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>Internal Server Error</html>`))
	}))

	_, err := client.ListBooks(context.Background())
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.Equal(t, "获取图书列表失败", appErr.Message)
}

func TestClient_401MapsToSessionExpired(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))

	_, err := client.MyOrders(context.Background(), "expired", 0, 10, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsSessionExpired(err))
}

func TestClient_TransportFailure(t *testing.T) {
	cfg := &config.Config{}
	// 无人监听的地址,请求直接失败
	cfg.Backend.BaseURL = "http://127.0.0.1:1"
	client := NewClient(cfg)

	_, err := client.ListBooks(context.Background())
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeNetworkError, appErr.Code)
}

func TestClient_ListQueryParams(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":0,"books":[]}`))
	}))

	_, err := client.ListBooksAdmin(context.Background(), "tok", 20, 10, "Go", "cat-1")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "skip=20")
	assert.Contains(t, gotQuery, "limit=10")
	assert.Contains(t, gotQuery, "search=Go")
	assert.Contains(t, gotQuery, "category_id=cat-1")
}
