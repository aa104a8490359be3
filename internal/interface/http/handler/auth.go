package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	cartapp "github.com/ute/bookshop/internal/application/cart"
	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/interface/http/dto"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	apperrors "github.com/ute/bookshop/pkg/errors"
	"github.com/ute/bookshop/pkg/response"
)

// AuthHandler 登录注册与个人资料处理器
type AuthHandler struct {
	backend        *backend.Client
	sessions       *sessionapp.Store
	carts          *cartapp.Store
	cookieName     string
	cartCookieName string
	ttl            time.Duration
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(
	client *backend.Client,
	sessions *sessionapp.Store,
	carts *cartapp.Store,
	cookieName, cartCookieName string,
	ttl time.Duration,
) *AuthHandler {
	return &AuthHandler{
		backend:        client,
		sessions:       sessions,
		carts:          carts,
		cookieName:     cookieName,
		cartCookieName: cartCookieName,
		ttl:            ttl,
	}
}

// Login 用户登录
// @Summary      登录
// @Description  手机号+密码登录，成功后令牌写入HttpOnly Cookie
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录凭证"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "凭证错误"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.backend.Login(c.Request.Context(), backend.LoginRequest{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 令牌只进HttpOnly Cookie，不出现在响应体里
	c.SetCookie(h.cookieName, result.AccessToken, int(h.ttl.Seconds()), "/", "", false, true)
	if err := h.sessions.Login(c.Request.Context(), result.AccessToken, result.User); err != nil {
		response.Error(c, err)
		return
	}

	// 游客期间加的购物车并入用户购物车，同一浏览器的购物车跨登录存续
	// 并入失败不阻塞登录，购物车可重新添加
	if guestID, err := c.Cookie(h.cartCookieName); err == nil && guestID != "" {
		_ = h.carts.Merge(c.Request.Context(), guestCartOwner(guestID), userCartOwner(result.User.ID))
	}

	response.Success(c, result.User)
}

// Register 用户注册
// @Summary      注册
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.backend.Register(c.Request.Context(), backend.RegisterRequest{
		Fullname: req.Fullname,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 注册成功后不自动登录，前端跳转登录页
	response.Success(c, result)
}

// Logout 退出登录
// @Summary      退出登录
// @Tags         认证
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		// 本地会话清理失败不阻塞退出
		_ = h.sessions.Logout(c.Request.Context(), token)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// Profile 查看个人资料
// @Summary      个人资料
// @Tags         认证
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/users/me [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.backend.GetProfile(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, user)
}

// UpdateProfile 更新个人资料
// @Summary      更新个人资料
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.ProfileUpdateRequest true "资料字段(可部分提交)"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/users/me [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	token := middleware.GetToken(c)
	user, err := h.backend.UpdateProfile(c.Request.Context(), token, backend.ProfileUpdateRequest{
		Fullname: req.Fullname,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}

	// 资料变了，会话缓存里的快照跟着刷新
	if err := h.sessions.Login(c.Request.Context(), token, *user); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
