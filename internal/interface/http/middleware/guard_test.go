package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ute/bookshop/pkg/token"
)

func newGuardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewGuard("access_token").Handle())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/login", ok)
	r.GET("/register", ok)
	r.GET("/dashboard", ok)
	r.GET("/dashboard/books", ok)
	r.GET("/dashboard-preview", ok)
	return r
}

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		UserID: "u-1",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func doGet(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardDashboardRequiresLogin(t *testing.T) {
	r := newGuardRouter()

	w := doGet(r, "/dashboard/books", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// TestGuardMatchesDashboardBoundary 只拦 /dashboard 本身和其子路径,
// 不拦恰好同前缀的其他路由
func TestGuardMatchesDashboardBoundary(t *testing.T) {
	r := newGuardRouter()

	w := doGet(r, "/dashboard", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = doGet(r, "/dashboard-preview", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardDashboardRequiresAdmin(t *testing.T) {
	r := newGuardRouter()

	w := doGet(r, "/dashboard/books", signToken(t, "customer", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGuardDashboardAdminPasses(t *testing.T) {
	r := newGuardRouter()

	w := doGet(r, "/dashboard/books", signToken(t, "admin", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardExpiredTokenTreatedAsAbsent(t *testing.T) {
	r := newGuardRouter()

	// 过期的管理员Token等同于没带Token
	w := doGet(r, "/dashboard/books", signToken(t, "admin", time.Now().Add(-time.Hour)))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGuardLoggedInRedirectedFromLogin(t *testing.T) {
	r := newGuardRouter()
	raw := signToken(t, "customer", time.Now().Add(time.Hour))

	for _, path := range []string{"/login", "/register"} {
		w := doGet(r, path, raw)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestGuardGarbageTokenIgnored(t *testing.T) {
	r := newGuardRouter()

	// 解不开的Token不应把用户挡在登录页之外
	w := doGet(r, "/login", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
}
