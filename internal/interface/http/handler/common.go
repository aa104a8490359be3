package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	apperrors "github.com/ute/bookshop/pkg/errors"
	"github.com/ute/bookshop/pkg/response"
)

// 游客购物车Cookie的有效期
const guestCartMaxAge = 180 * 24 * time.Hour

// fail 统一错误出口
// 会话过期时先清除本地会话缓存和Cookie再返回40102，
// 前端收到该业务码后跳转登录页
func fail(c *gin.Context, sessions *sessionapp.Store, cookieName string, err error) {
	if apperrors.IsSessionExpired(err) {
		if token := middleware.GetToken(c); token != "" {
			sessions.Invalidate(c.Request.Context(), token)
		}
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
		response.ErrorWithCode(c, apperrors.ErrCodeSessionExpired, "登录已过期，请重新登录")
		return
	}
	response.Error(c, err)
}

// confirmed 删除类操作的二次确认
// 代替浏览器侧的confirm弹窗：必须显式携带confirm=true
func confirmed(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "删除操作需要携带confirm=true确认")
		return false
	}
	return true
}

// 购物车归属键的两个命名空间，避免用户ID与游客uuid撞车
func userCartOwner(userID string) string { return "u:" + userID }

func guestCartOwner(guestID string) string { return "g:" + guestID }

// cartOwner 返回当前请求的购物车归属键
// 已登录用户用用户ID，游客用Cookie里的匿名ID（没有就发一个）
// 登录时游客购物车会整体并入用户购物车，见AuthHandler.Login
func cartOwner(c *gin.Context, cartCookieName string) string {
	if sess := middleware.GetSession(c); sess != nil {
		return userCartOwner(sess.User.ID)
	}

	id, err := c.Cookie(cartCookieName)
	if err != nil || id == "" {
		id = uuid.New().String()
		c.SetCookie(cartCookieName, id, int(guestCartMaxAge.Seconds()), "/", "", false, true)
	}
	return guestCartOwner(id)
}
