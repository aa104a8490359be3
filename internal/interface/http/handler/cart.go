package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	cartapp "github.com/ute/bookshop/internal/application/cart"
	checkoutapp "github.com/ute/bookshop/internal/application/checkout"
	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/domain/cart"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/interface/http/dto"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	apperrors "github.com/ute/bookshop/pkg/errors"
	"github.com/ute/bookshop/pkg/response"
)

// CartHandler 购物车处理器
// 游客和登录用户都能用，归属键见cartOwner
type CartHandler struct {
	backend        *backend.Client
	carts          *cartapp.Store
	checkout       *checkoutapp.UseCase
	sessions       *sessionapp.Store
	cookieName     string
	cartCookieName string
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	client *backend.Client,
	carts *cartapp.Store,
	checkout *checkoutapp.UseCase,
	sessions *sessionapp.Store,
	cookieName, cartCookieName string,
) *CartHandler {
	return &CartHandler{
		backend:        client,
		carts:          carts,
		checkout:       checkout,
		sessions:       sessions,
		cookieName:     cookieName,
		cartCookieName: cartCookieName,
	}
}

// CartView 购物车视图
// 金额都是现算的派生值，仅供展示
type CartView struct {
	Items     []cart.Item          `json:"items"`
	ItemCount int                  `json:"item_count"`
	Subtotal  int64                `json:"subtotal"`
	Preview   *checkoutapp.Preview `json:"preview,omitempty"`
	Warning   string               `json:"warning,omitempty"`
}

func (h *CartHandler) view(c *cart.Cart, preview *checkoutapp.Preview, warning string) *CartView {
	return &CartView{
		Items:     c.Items(),
		ItemCount: c.ItemCount(),
		Subtotal:  c.TotalAmount(),
		Preview:   preview,
		Warning:   warning,
	}
}

// respond 统一的购物车变更响应
// 库存钳制不是失败：钳制后的状态已落库，以警告随正常响应返回
func (h *CartHandler) respond(ginc *gin.Context, c *cart.Cart, err error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrStockLimited) {
			response.Success(ginc, h.view(c, nil, "库存不足，已调整为最大可购数量"))
			return
		}
		fail(ginc, h.sessions, h.cookieName, err)
		return
	}
	response.Success(ginc, h.view(c, nil, ""))
}

// View 查看购物车
// @Summary      查看购物车
// @Description  可选coupon参数同时返回金额预览
// @Tags         购物车
// @Produce      json
// @Param        coupon query string false "优惠码"
// @Success      200 {object} response.Response{data=handler.CartView}
// @Router       /api/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	owner := cartOwner(c, h.cartCookieName)
	current := h.carts.Get(c.Request.Context(), owner)

	var preview *checkoutapp.Preview
	var warning string
	if !current.IsEmpty() {
		p, err := h.checkout.BuildPreview(current, c.Query("coupon"))
		preview = &p
		if errors.Is(err, apperrors.ErrInvalidCoupon) {
			warning = "优惠码无效"
		}
	}

	response.Success(c, h.view(current, preview, warning))
}

// Add 加入购物车
// @Summary      加入购物车
// @Description  已在车中的图书数量+1，超过库存时钳制并附带警告
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        request body dto.AddToCartRequest true "图书ID"
// @Success      200 {object} response.Response{data=handler.CartView}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 每次加车都取一次最新的价格和库存做快照
	book, err := h.backend.GetBook(c.Request.Context(), req.BookID)
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}

	owner := cartOwner(c, h.cartCookieName)
	current, err := h.carts.Add(c.Request.Context(), owner, cart.Item{
		BookID:        book.BookID,
		Title:         book.Title,
		Price:         book.Price,
		StockQuantity: book.StockQuantity,
		CoverImageURL: book.CoverImageURL,
	})
	h.respond(c, current, err)
}

// UpdateQuantity 修改数量
// @Summary      修改购物车数量
// @Description  数量小于1时整行移除
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        book_id path string true "图书ID"
// @Param        request body dto.UpdateQuantityRequest true "目标数量"
// @Success      200 {object} response.Response{data=handler.CartView}
// @Failure      404 {object} response.Response "不在购物车中"
// @Router       /api/cart/items/{book_id} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	owner := cartOwner(c, h.cartCookieName)
	current, err := h.carts.SetQuantity(c.Request.Context(), owner, c.Param("book_id"), req.Quantity)
	h.respond(c, current, err)
}

// Remove 移除商品
// @Summary      从购物车移除
// @Tags         购物车
// @Produce      json
// @Param        book_id path string true "图书ID"
// @Success      200 {object} response.Response{data=handler.CartView}
// @Router       /api/cart/items/{book_id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	owner := cartOwner(c, h.cartCookieName)
	current, err := h.carts.Remove(c.Request.Context(), owner, c.Param("book_id"))
	h.respond(c, current, err)
}

// Clear 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	owner := cartOwner(c, h.cartCookieName)
	if err := h.carts.Clear(c.Request.Context(), owner); err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, nil)
}

// Checkout 结算下单
// @Summary      结算下单
// @Description  校验地址与购物车后向后端下单，成功后清空购物车
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutRequest true "收货地址/支付方式/优惠码"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "地址为空/购物车为空/优惠码无效"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 结算要求登录，归属键一定是用户维度
	owner := cartOwner(c, h.cartCookieName)
	result, err := h.checkout.Execute(c.Request.Context(), middleware.GetToken(c), owner, checkoutapp.Request{
		ShippingAddress: req.ShippingAddress,
		PaymentMethodID: req.PaymentMethodID,
		CouponCode:      req.CouponCode,
	})
	if err != nil {
		fail(c, h.sessions, h.cookieName, err)
		return
	}
	response.Success(c, result)
}
