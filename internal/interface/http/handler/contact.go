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

// ContactHandler 联系我们处理器
type ContactHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewContactHandler 创建联系处理器
func NewContactHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *ContactHandler {
	return &ContactHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

// Create 提交留言
// @Summary      提交留言
// @Description  游客需附姓名邮箱，登录用户由后端从令牌识别
// @Tags         联系
// @Accept       json
// @Produce      json
// @Param        request body dto.ContactCreateRequest true "留言内容"
// @Success      200 {object} response.Response
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 游客留言必须能联系到人
	token := middleware.GetToken(c)
	if token == "" && (req.FullName == "" || req.Email == "") {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "游客留言需要填写姓名和邮箱")
		return
	}

	contact, err := h.backend.CreateContact(c.Request.Context(), token, backend.ContactCreate{
		Subject:  req.Subject,
		Message:  req.Message,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, contact)
}

// MyContacts 我的留言列表
// @Summary      我的留言
// @Tags         联系
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/contacts/my [get]
func (h *ContactHandler) MyContacts(c *gin.Context) {
	contacts, err := h.backend.MyContacts(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, contacts)
}

// Notifications 通知列表
// @Summary      通知
// @Description  管理员已回复的留言作为通知展示
// @Tags         联系
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/notifications [get]
func (h *ContactHandler) Notifications(c *gin.Context) {
	notifications, err := h.backend.Notifications(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, notifications)
}
