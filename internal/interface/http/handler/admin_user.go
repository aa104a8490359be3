package handler

import (
	"github.com/gin-gonic/gin"

	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/interface/http/dto"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	apperrors "github.com/ute/bookshop/pkg/errors"
	"github.com/ute/bookshop/pkg/response"
)

// AdminUserHandler 后台用户管理处理器
type AdminUserHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewAdminUserHandler 创建后台用户处理器
func NewAdminUserHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *AdminUserHandler {
	return &AdminUserHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

// List 用户列表
// @Summary      后台用户列表
// @Tags         后台-用户
// @Produce      json
// @Param        skip query int false "跳过条数"
// @Param        limit query int false "每页条数"
// @Param        search query string false "姓名/邮箱关键字"
// @Param        role query string false "角色过滤 customer|admin"
// @Success      200 {object} response.Response
// @Router       /api/admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	list, err := h.backend.ListUsersAdmin(c.Request.Context(), middleware.GetToken(c),
		q.Skip, q.Limit, q.Search, c.Query("role"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.SuccessWithPage(c, list.Users, list.Total, q.Skip, q.Limit, len(list.Users))
}

// Get 用户详情
// @Summary      后台用户详情
// @Tags         后台-用户
// @Produce      json
// @Param        id path string true "用户ID"
// @Success      200 {object} response.Response
// @Router       /api/admin/users/{id} [get]
func (h *AdminUserHandler) Get(c *gin.Context) {
	user, err := h.backend.GetUserAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, user)
}

// Create 新增用户
// @Summary      后台新增用户
// @Tags         后台-用户
// @Accept       json
// @Produce      json
// @Param        request body dto.AdminUserCreateRequest true "用户信息"
// @Success      200 {object} response.Response
// @Router       /api/admin/users [post]
func (h *AdminUserHandler) Create(c *gin.Context) {
	var req dto.AdminUserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	user, err := h.backend.CreateUserAdmin(c.Request.Context(), middleware.GetToken(c), backend.AdminUserCreate{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, user)
}

// Update 修改用户
// @Summary      后台修改用户
// @Tags         后台-用户
// @Accept       json
// @Produce      json
// @Param        id path string true "用户ID"
// @Param        request body dto.AdminUserUpdateRequest true "用户字段(可部分提交)"
// @Success      200 {object} response.Response
// @Router       /api/admin/users/{id} [put]
func (h *AdminUserHandler) Update(c *gin.Context) {
	var req dto.AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	user, err := h.backend.UpdateUserAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id"), backend.AdminUserUpdate{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, user)
}

// Delete 删除用户
// @Summary      后台删除用户
// @Tags         后台-用户
// @Produce      json
// @Param        id path string true "用户ID"
// @Param        confirm query string true "必须为true"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "缺少确认参数"
// @Router       /api/admin/users/{id} [delete]
func (h *AdminUserHandler) Delete(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if err := h.backend.DeleteUserAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id")); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, nil)
}
