package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ute/bookshop/pkg/token"
)

// Guard 路由守卫
// 行为(与来源的路由中间件一致):
//  1. 未登录访问/dashboard/* → 跳转/login
//  2. 已登录访问/login或/register → 跳转首页
//  3. /dashboard/*额外检查admin角色(从Token的Claims解码,不验签;
//     真正的权限判定仍由后端在每个接口上完成)
type Guard struct {
	cookieName string
}

// NewGuard 创建路由守卫
func NewGuard(cookieName string) *Guard {
	return &Guard{cookieName: cookieName}
}

// Handle 守卫中间件
// 挂在引擎最外层,按路径前缀分派
func (g *Guard) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		cookie, err := c.Cookie(g.cookieName)
		hasToken := err == nil && cookie != ""

		// 过期的Token视同没有
		var isAdmin bool
		if hasToken {
			claims, peekErr := token.Peek(cookie)
			if peekErr != nil || claims.IsExpired() {
				hasToken = false
			} else {
				isAdmin = claims.IsAdmin()
			}
		}

		if path == "/dashboard" || strings.HasPrefix(path, "/dashboard/") {
			if !hasToken {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			if !isAdmin {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
		}

		if hasToken && (path == "/login" || path == "/register") {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
