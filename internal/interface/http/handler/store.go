package handler

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/pkg/response"
)

// StoreHandler 店面图书浏览处理器
// 公开接口，游客可访问
type StoreHandler struct {
	backend *backend.Client
}

// NewStoreHandler 创建店面处理器
func NewStoreHandler(client *backend.Client) *StoreHandler {
	return &StoreHandler{backend: client}
}

// BookDetailPage 图书详情页聚合数据
type BookDetailPage struct {
	Book          *backend.BookDetail    `json:"book"`
	Reviews       []backend.Review       `json:"reviews"`
	RatingSummary *backend.RatingSummary `json:"rating_summary"`
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  首页图书列表，无需登录
// @Tags         店面
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/books [get]
func (h *StoreHandler) ListBooks(c *gin.Context) {
	books, err := h.backend.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

// BookDetail 图书详情页
// @Summary      图书详情
// @Description  详情、评论列表与评分汇总并发拉取后一次返回
// @Tags         店面
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=handler.BookDetailPage}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/books/{id} [get]
func (h *StoreHandler) BookDetail(c *gin.Context) {
	bookID := c.Param("id")

	// 三个数据源互不依赖，并发拉取
	// 评论和评分失败不影响详情展示，降级为空
	var page BookDetailPage
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		book, err := h.backend.GetBook(ctx, bookID)
		if err != nil {
			return err
		}
		page.Book = book
		return nil
	})
	g.Go(func() error {
		reviews, err := h.backend.BookReviews(ctx, bookID, 0, 50)
		if err == nil {
			page.Reviews = reviews
		}
		return nil
	})
	g.Go(func() error {
		summary, err := h.backend.BookRatingSummary(ctx, bookID)
		if err == nil {
			page.RatingSummary = summary
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		response.Error(c, err)
		return
	}
	if page.Reviews == nil {
		page.Reviews = []backend.Review{}
	}
	response.Success(c, &page)
}
