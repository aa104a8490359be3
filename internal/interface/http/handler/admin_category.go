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

// AdminCategoryHandler 后台分类管理处理器
type AdminCategoryHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewAdminCategoryHandler 创建后台分类处理器
func NewAdminCategoryHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *AdminCategoryHandler {
	return &AdminCategoryHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

// List 分类列表
// @Summary      后台分类列表
// @Tags         后台-分类
// @Produce      json
// @Param        skip query int false "跳过条数"
// @Param        limit query int false "每页条数"
// @Success      200 {object} response.Response
// @Router       /api/admin/categories [get]
func (h *AdminCategoryHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	list, err := h.backend.ListCategoriesAdmin(c.Request.Context(), middleware.GetToken(c), q.Skip, q.Limit)
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.SuccessWithPage(c, list.Categories, list.Total, q.Skip, q.Limit, len(list.Categories))
}

// Get 分类详情
// @Summary      后台分类详情
// @Tags         后台-分类
// @Produce      json
// @Param        id path string true "分类ID"
// @Success      200 {object} response.Response
// @Router       /api/admin/categories/{id} [get]
func (h *AdminCategoryHandler) Get(c *gin.Context) {
	category, err := h.backend.GetCategoryAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, category)
}

// Create 新增分类
// @Summary      后台新增分类
// @Tags         后台-分类
// @Accept       json
// @Produce      json
// @Param        request body dto.AdminCategoryCreateRequest true "分类信息"
// @Success      200 {object} response.Response
// @Router       /api/admin/categories [post]
func (h *AdminCategoryHandler) Create(c *gin.Context) {
	var req dto.AdminCategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	category, err := h.backend.CreateCategoryAdmin(c.Request.Context(), middleware.GetToken(c), backend.AdminCategoryCreate{
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, category)
}

// Update 修改分类
// @Summary      后台修改分类
// @Tags         后台-分类
// @Accept       json
// @Produce      json
// @Param        id path string true "分类ID"
// @Param        request body dto.AdminCategoryUpdateRequest true "分类名称"
// @Success      200 {object} response.Response
// @Router       /api/admin/categories/{id} [put]
func (h *AdminCategoryHandler) Update(c *gin.Context) {
	var req dto.AdminCategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	category, err := h.backend.UpdateCategoryAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id"), req.CategoryName)
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, category)
}

// Delete 删除分类
// @Summary      后台删除分类
// @Description  分类下还有图书时后端会拒绝
// @Tags         后台-分类
// @Produce      json
// @Param        id path string true "分类ID"
// @Param        confirm query string true "必须为true"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "缺少确认参数/分类下仍有图书"
// @Router       /api/admin/categories/{id} [delete]
func (h *AdminCategoryHandler) Delete(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if err := h.backend.DeleteCategoryAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id")); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, nil)
}
