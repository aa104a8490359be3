package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	"github.com/ute/bookshop/pkg/response"
)

// DashboardHandler 后台仪表盘处理器
type DashboardHandler struct {
	backend    *backend.Client
	sessions   *sessionapp.Store
	cookieName string
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(client *backend.Client, sessions *sessionapp.Store, cookieName string) *DashboardHandler {
	return &DashboardHandler{backend: client, sessions: sessions, cookieName: cookieName}
}

// DashboardView 仪表盘聚合数据
type DashboardView struct {
	Stats         *backend.DashboardStats   `json:"stats"`
	OrderStatus   *backend.OrderStatusStats `json:"order_status"`
	MonthlyTrends *backend.MonthlyTrends    `json:"monthly_trends"`
}

// Overview 仪表盘总览
// @Summary      仪表盘
// @Description  统计、订单状态分布、月度趋势三路并发拉取，全部到齐后返回
// @Tags         后台
// @Produce      json
// @Param        months query int false "趋势月数" default(6)
// @Success      200 {object} response.Response{data=handler.DashboardView}
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非管理员"
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))
	token := middleware.GetToken(c)

	// 任何一路失败整页失败，后台页面不做局部降级
	var view DashboardView
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		stats, err := h.backend.GetDashboardStats(ctx, token)
		if err != nil {
			return err
		}
		view.Stats = stats
		return nil
	})
	g.Go(func() error {
		status, err := h.backend.GetOrderStatusStats(ctx, token)
		if err != nil {
			return err
		}
		view.OrderStatus = status
		return nil
	})
	g.Go(func() error {
		trends, err := h.backend.GetMonthlyTrends(ctx, token, months)
		if err != nil {
			return err
		}
		view.MonthlyTrends = trends
		return nil
	})

	if err := g.Wait(); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, &view)
}
