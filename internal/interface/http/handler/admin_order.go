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

// AdminOrderHandler 后台订单管理处理器
type AdminOrderHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewAdminOrderHandler 创建后台订单处理器
func NewAdminOrderHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *AdminOrderHandler {
	return &AdminOrderHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

// List 订单列表
// @Summary      后台订单列表
// @Description  管理员令牌下的订单历史接口返回全部订单
// @Tags         后台-订单
// @Produce      json
// @Param        skip query int false "跳过条数"
// @Param        limit query int false "每页条数"
// @Param        status query string false "按状态过滤"
// @Success      200 {object} response.Response
// @Router       /api/admin/orders [get]
func (h *AdminOrderHandler) List(c *gin.Context) {
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

// UpdateStatus 修改订单状态
// @Summary      后台修改订单状态
// @Description  状态流转规则由后端校验，非法流转返回业务错误
// @Tags         后台-订单
// @Accept       json
// @Produce      json
// @Param        id path string true "订单ID"
// @Param        request body dto.OrderStatusUpdateRequest true "目标状态"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "非法状态流转"
// @Router       /api/admin/orders/{id}/status [put]
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	order, err := h.backend.UpdateOrderStatus(c.Request.Context(), middleware.GetToken(c), c.Param("id"), req.Status)
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, order)
}
