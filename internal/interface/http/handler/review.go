package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/interface/http/dto"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	apperrors "github.com/ute/bookshop/pkg/errors"
	"github.com/ute/bookshop/pkg/response"
)

// ReviewHandler 图书评论处理器
type ReviewHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *ReviewHandler {
	return &ReviewHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

func reviewID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "评论ID必须是数字")
		return 0, false
	}
	return id, true
}

// Create 发表评论
// @Summary      发表评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        request body dto.ReviewCreateRequest true "评分与内容"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	review, err := h.backend.CreateReview(c.Request.Context(), middleware.GetToken(c), backend.ReviewCreate{
		BookID:  req.BookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, review)
}

// Update 修改自己的评论
// @Summary      修改评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        id path int true "评论ID"
// @Param        request body dto.ReviewUpdateRequest true "评分与内容"
// @Success      200 {object} response.Response
// @Failure      403 {object} response.Response "不是自己的评论"
// @Router       /api/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var req dto.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	review, err := h.backend.UpdateReview(c.Request.Context(), middleware.GetToken(c), id, backend.ReviewUpdate{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, review)
}

// Delete 删除自己的评论
// @Summary      删除评论
// @Tags         评论
// @Produce      json
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	if err := h.backend.DeleteReview(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, nil)
}

// DeleteAdmin 后台删除任意评论
// @Summary      后台删除评论
// @Tags         后台-留言
// @Produce      json
// @Param        id path int true "评论ID"
// @Param        confirm query string true "必须为true"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "缺少确认参数"
// @Router       /api/admin/reviews/{id} [delete]
func (h *ReviewHandler) DeleteAdmin(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	id, ok := reviewID(c)
	if !ok {
		return
	}

	if err := h.backend.DeleteReviewAdmin(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, nil)
}
