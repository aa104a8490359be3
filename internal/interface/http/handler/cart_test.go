package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/ute/bookshop/internal/application/cart"
	checkoutapp "github.com/ute/bookshop/internal/application/checkout"
	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/infrastructure/config"
	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
	"github.com/ute/bookshop/internal/interface/http/middleware"
)

// cartEnvelope 购物车接口响应体
type cartEnvelope struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Data    CartView `json:"data"`
}

// newCartRig 组装一套指向假后端的购物车路由
func newCartRig(t *testing.T, backendHandler http.Handler) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL
	client := backend.NewClient(cfg)

	kv := store.NewMemStore()
	carts := cartapp.NewStore(kv, 0)
	sessions := sessionapp.NewStore(kv, client, time.Hour)
	checkout := checkoutapp.NewUseCase(client, carts, 30000)
	h := NewCartHandler(client, carts, checkout, sessions, "access_token", "cart_id")

	r := gin.New()
	r.GET("/api/cart", h.View)
	r.POST("/api/cart/items", h.Add)
	r.PUT("/api/cart/items/:book_id", h.UpdateQuantity)
	r.DELETE("/api/cart/items/:book_id", h.Remove)
	return r, srv
}

// fakeBookBackend 返回固定图书的假后端
func fakeBookBackend(price int64, stock int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/b-1", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"book_id":"b-1","title":"Go程序设计","price":%d,"stock_quantity":%d,"cover_image_url":"http://img/b-1.jpg"}`, price, stock)
	})
	return mux
}

func addBook(t *testing.T, r *gin.Engine, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	body := bytes.NewBufferString(`{"book_id":"b-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartAddIssuesGuestCookie(t *testing.T) {
	r, _ := newCartRig(t, fakeBookBackend(50000, 5))

	w := addBook(t, r, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var issued bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "cart_id" && c.Value != "" {
			issued = true
		}
	}
	assert.True(t, issued, "首次加车应发放游客购物车Cookie")

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 0, env.Code)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, 1, env.Data.Items[0].Quantity)
	assert.Equal(t, int64(50000), env.Data.Subtotal)
}

func TestCartAddClampedAtStock(t *testing.T) {
	r, _ := newCartRig(t, fakeBookBackend(50000, 2))
	cookies := []*http.Cookie{{Name: "cart_id", Value: "guest-1"}}

	// 库存2，加3次
	for i := 0; i < 2; i++ {
		w := addBook(t, r, cookies)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := addBook(t, r, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 0, env.Code, "钳制不是失败")
	assert.NotEmpty(t, env.Data.Warning)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, 2, env.Data.Items[0].Quantity, "数量停在库存上限")
}

func TestCartViewWithCouponPreview(t *testing.T) {
	r, _ := newCartRig(t, fakeBookBackend(100000, 10))
	cookies := []*http.Cookie{{Name: "cart_id", Value: "guest-2"}}

	addBook(t, r, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/cart?coupon=SALE10", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Data.Preview)
	assert.Equal(t, int64(100000), env.Data.Preview.Subtotal)
	assert.Equal(t, int64(10000), env.Data.Preview.Discount)
	assert.Equal(t, int64(30000), env.Data.Preview.ShippingFee)
	assert.Equal(t, int64(120000), env.Data.Preview.Total)
}

func TestCartInvalidCouponWarnsButShowsTotals(t *testing.T) {
	r, _ := newCartRig(t, fakeBookBackend(100000, 10))
	cookies := []*http.Cookie{{Name: "cart_id", Value: "guest-3"}}

	addBook(t, r, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/cart?coupon=NOPE", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "优惠码无效", env.Data.Warning)
	require.NotNil(t, env.Data.Preview)
	assert.Equal(t, int64(0), env.Data.Preview.Discount, "无效优惠码不打折")
}

// TestCartSurvivesLogin 游客加车后登录，购物车并入用户名下继续可见
func TestCartSurvivesLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/b-1", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"book_id":"b-1","title":"Go程序设计","price":50000,"stock_quantity":5,"cover_image_url":"http://img/b-1.jpg"}`)
	})
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"tok-1","token_type":"bearer","user":{"id":"u-1","fullname":"张三","email":"z@x.cn","phone":"13800000000","role":"customer"}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL
	client := backend.NewClient(cfg)

	kv := store.NewMemStore()
	carts := cartapp.NewStore(kv, 0)
	sessions := sessionapp.NewStore(kv, client, time.Hour)
	checkout := checkoutapp.NewUseCase(client, carts, 30000)
	cartH := NewCartHandler(client, carts, checkout, sessions, "access_token", "cart_id")
	authH := NewAuthHandler(client, sessions, carts, "access_token", "cart_id", time.Hour)
	authMw := middleware.NewAuthMiddleware(sessions, "access_token")

	r := gin.New()
	r.POST("/api/auth/login", authH.Login)
	cart := r.Group("/api/cart", authMw.Resolve())
	cart.GET("", cartH.View)
	cart.POST("/items", cartH.Add)

	guestCookie := &http.Cookie{Name: "cart_id", Value: "guest-9"}

	// 游客身份加车
	w := addBook(t, r, []*http.Cookie{guestCookie})
	require.Equal(t, http.StatusOK, w.Code)

	// 带着游客Cookie登录
	loginBody := bytes.NewBufferString(`{"phone":"13800000000","password":"secret123"}`)
	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login", loginBody)
	loginReq.Header.Set("Content-Type", "application/json")
	loginReq.AddCookie(guestCookie)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, loginReq)
	require.Equal(t, http.StatusOK, lw.Code)

	var tokenCookie *http.Cookie
	for _, c := range lw.Result().Cookies() {
		if c.Name == "access_token" {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie, "登录应写入令牌Cookie")

	// 登录后查看购物车，游客期间加的商品仍在
	viewReq := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	viewReq.AddCookie(tokenCookie)
	viewReq.AddCookie(guestCookie)
	vw := httptest.NewRecorder()
	r.ServeHTTP(vw, viewReq)
	require.Equal(t, http.StatusOK, vw.Code)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(vw.Body.Bytes(), &env))
	assert.Equal(t, 0, env.Code)
	require.Len(t, env.Data.Items, 1, "游客购物车应并入用户购物车")
	assert.Equal(t, "b-1", env.Data.Items[0].BookID)
}

func TestCartRemoveMissing(t *testing.T) {
	r, _ := newCartRig(t, fakeBookBackend(100000, 10))
	cookies := []*http.Cookie{{Name: "cart_id", Value: "guest-4"}}

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/b-404", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.NotEqual(t, 0, env.Code, "移除不存在的商品应返回业务错误")
}
