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

// AdminContactHandler 后台留言管理处理器
type AdminContactHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewAdminContactHandler 创建后台留言处理器
func NewAdminContactHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *AdminContactHandler {
	return &AdminContactHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

func contactID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "留言ID必须是数字")
		return 0, false
	}
	return id, true
}

// List 留言列表
// @Summary      后台留言列表
// @Tags         后台-留言
// @Produce      json
// @Param        skip query int false "跳过条数"
// @Param        limit query int false "每页条数"
// @Param        status query string false "状态过滤 pending|resolved"
// @Success      200 {object} response.Response
// @Router       /api/admin/contacts [get]
func (h *AdminContactHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	list, err := h.backend.ListContactsAdmin(c.Request.Context(), middleware.GetToken(c),
		q.Skip, q.Limit, c.Query("status"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.SuccessWithPage(c, list.Contacts, list.Total, q.Skip, q.Limit, len(list.Contacts))
}

// Get 留言详情
// @Summary      后台留言详情
// @Tags         后台-留言
// @Produce      json
// @Param        id path int true "留言ID"
// @Success      200 {object} response.Response
// @Router       /api/admin/contacts/{id} [get]
func (h *AdminContactHandler) Get(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.backend.GetContactAdmin(c.Request.Context(), middleware.GetToken(c), id)
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, contact)
}

// Reply 回复留言
// @Summary      后台回复留言
// @Description  回复后该留言状态变为resolved，并进入用户的通知列表
// @Tags         后台-留言
// @Accept       json
// @Produce      json
// @Param        id path int true "留言ID"
// @Param        request body dto.ContactReplyRequest true "回复内容"
// @Success      200 {object} response.Response
// @Router       /api/admin/contacts/{id}/reply [put]
func (h *AdminContactHandler) Reply(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	var req dto.ContactReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	contact, err := h.backend.ReplyContactAdmin(c.Request.Context(), middleware.GetToken(c), id, req.Reply)
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, contact)
}

// Delete 删除留言
// @Summary      后台删除留言
// @Tags         后台-留言
// @Produce      json
// @Param        id path int true "留言ID"
// @Param        confirm query string true "必须为true"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "缺少确认参数"
// @Router       /api/admin/contacts/{id} [delete]
func (h *AdminContactHandler) Delete(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	id, ok := contactID(c)
	if !ok {
		return
	}

	if err := h.backend.DeleteContactAdmin(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, nil)
}
