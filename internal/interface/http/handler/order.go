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

// OrderHandler 我的订单处理器
// 订单数据全部由后端持有，这里只做转发和会话处理
type OrderHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *OrderHandler {
	return &OrderHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

// MyOrders 订单历史
// @Summary      我的订单
// @Tags         订单
// @Produce      json
// @Param        skip query int false "跳过条数"
// @Param        limit query int false "每页条数"
// @Param        status query string false "按状态过滤"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/orders [get]
func (h *OrderHandler) MyOrders(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	history, err := h.backend.MyOrders(c.Request.Context(), middleware.GetToken(c), q.Skip, q.Limit, c.Query("status"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.SuccessWithPage(c, history.Orders, history.Total, q.Skip, q.Limit, len(history.Orders))
}

// GetOrder 订单详情
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Param        id path string true "订单ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.backend.GetOrder(c.Request.Context(), middleware.GetToken(c), c.Param("id"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder 取消订单
// @Summary      取消订单
// @Description  能否取消由后端按订单状态判定
// @Tags         订单
// @Produce      json
// @Param        id path string true "订单ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "当前状态不可取消"
// @Router       /api/orders/{id}/cancel [put]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	result, err := h.backend.CancelOrder(c.Request.Context(), middleware.GetToken(c), c.Param("id"))
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, result)
}
