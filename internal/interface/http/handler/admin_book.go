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

// AdminBookHandler 后台图书管理处理器
type AdminBookHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewAdminBookHandler 创建后台图书处理器
func NewAdminBookHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *AdminBookHandler {
	return &AdminBookHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

// List 图书列表
// @Summary      后台图书列表
// @Tags         后台-图书
// @Produce      json
// @Param        skip query int false "跳过条数"
// @Param        limit query int false "每页条数"
// @Param        search query string false "标题/作者关键字"
// @Param        category_id query string false "分类过滤"
// @Success      200 {object} response.Response
// @Router       /api/admin/books [get]
func (h *AdminBookHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	list, err := h.backend.ListBooksAdmin(c.Request.Context(), middleware.GetToken(c),
		q.Skip, q.Limit, q.Search, c.Query("category_id"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.SuccessWithPage(c, list.Books, list.Total, q.Skip, q.Limit, len(list.Books))
}

// Get 图书详情
// @Summary      后台图书详情
// @Tags         后台-图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response
// @Router       /api/admin/books/{id} [get]
func (h *AdminBookHandler) Get(c *gin.Context) {
	book, err := h.backend.GetBookAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, book)
}

// Create 新增图书
// @Summary      后台新增图书
// @Tags         后台-图书
// @Accept       json
// @Produce      json
// @Param        request body dto.AdminBookCreateRequest true "图书信息"
// @Success      200 {object} response.Response
// @Router       /api/admin/books [post]
func (h *AdminBookHandler) Create(c *gin.Context) {
	var req dto.AdminBookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	book, err := h.backend.CreateBookAdmin(c.Request.Context(), middleware.GetToken(c), backend.AdminBookCreate{
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		StockQuantity:   req.StockQuantity,
		Description:     req.Description,
		CoverImageURL:   req.CoverImageURL,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, book)
}

// Update 修改图书
// @Summary      后台修改图书
// @Description  零值字段不提交，后端保持原值
// @Tags         后台-图书
// @Accept       json
// @Produce      json
// @Param        id path string true "图书ID"
// @Param        request body dto.AdminBookUpdateRequest true "图书字段(可部分提交)"
// @Success      200 {object} response.Response
// @Router       /api/admin/books/{id} [put]
func (h *AdminBookHandler) Update(c *gin.Context) {
	var req dto.AdminBookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	book, err := h.backend.UpdateBookAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id"), backend.AdminBookUpdate{
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		StockQuantity:   req.StockQuantity,
		Description:     req.Description,
		CoverImageURL:   req.CoverImageURL,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, book)
}

// UpdateStock 调整库存
// @Summary      后台调整库存
// @Tags         后台-图书
// @Accept       json
// @Produce      json
// @Param        id path string true "图书ID"
// @Param        request body dto.AdminStockUpdateRequest true "目标库存"
// @Success      200 {object} response.Response
// @Router       /api/admin/books/{id}/stock [patch]
func (h *AdminBookHandler) UpdateStock(c *gin.Context) {
	var req dto.AdminStockUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	book, err := h.backend.UpdateStockAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id"), req.StockQuantity)
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, book)
}

// Delete 删除图书
// @Summary      后台删除图书
// @Tags         后台-图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Param        confirm query string true "必须为true"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "缺少确认参数"
// @Router       /api/admin/books/{id} [delete]
func (h *AdminBookHandler) Delete(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if err := h.backend.DeleteBookAdmin(c.Request.Context(), middleware.GetToken(c), c.Param("id")); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, nil)
}
