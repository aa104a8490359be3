package middleware

import (
	"github.com/gin-gonic/gin"

	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/domain/session"
	apperrors "github.com/ute/bookshop/pkg/errors"
	"github.com/ute/bookshop/pkg/response"
)

const (
	ctxKeySession = "session"
	ctxKeyToken   = "access_token"
)

// AuthMiddleware 会话中间件
// 设计说明：
// 1. 从Cookie提取访问令牌
// 2. 通过会话存储解析三态(anonymous/unverified/authenticated)
// 3. 已认证时将会话注入Context,供Handler使用
type AuthMiddleware struct {
	sessions   *sessionapp.Store
	cookieName string
}

// NewAuthMiddleware 创建会话中间件
func NewAuthMiddleware(sessions *sessionapp.Store, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// Resolve 解析会话但不强制登录
// 游客也能访问的页面(首页、购物车)使用
func (m *AuthMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		c.Set(ctxKeyToken, token)
		if sess, state := m.sessions.Resolve(c.Request.Context(), token); state == session.StateAuthenticated {
			c.Set(ctxKeySession, sess)
		}
		c.Next()
	}
}

// RequireAuth 要求登录
// 使用方式：
//
//	orders := r.Group("/orders")
//	orders.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			response.ErrorWithCode(c, apperrors.ErrCodeUnauthorized, "请先登录")
			c.Abort()
			return
		}

		sess, state := m.sessions.Resolve(c.Request.Context(), token)
		if state != session.StateAuthenticated {
			response.ErrorWithCode(c, apperrors.ErrCodeSessionExpired, "登录已过期，请重新登录")
			c.Abort()
			return
		}

		c.Set(ctxKeyToken, token)
		c.Set(ctxKeySession, sess)
		c.Next()
	}
}

// RequireAdmin 要求管理员角色
// 必须挂在RequireAuth之后;角色的最终判定仍由后端完成,
// 这里只是挡掉明显无权限的请求
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.User.IsAdmin() {
			response.ErrorWithCode(c, apperrors.ErrCodeForbidden, "没有权限执行此操作")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession 从Context获取已认证会话,未认证返回nil
func GetSession(c *gin.Context) *session.Session {
	value, exists := c.Get(ctxKeySession)
	if !exists {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// GetToken 从Context获取访问令牌,没有返回空串
func GetToken(c *gin.Context) string {
	value, exists := c.Get(ctxKeyToken)
	if !exists {
		return ""
	}
	token, ok := value.(string)
	if !ok {
		return ""
	}
	return token
}
