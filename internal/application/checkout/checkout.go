package checkout

import (
	"context"
	"math"
	"strings"

	cartapp "github.com/ute/bookshop/internal/application/cart"
	domaincart "github.com/ute/bookshop/internal/domain/cart"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	apperrors "github.com/ute/bookshop/pkg/errors"
)

// 优惠码规则(与来源行为一致:单一硬编码优惠码,本地精确匹配,不向后端验证)
const (
	CouponCode    = "SALE10"
	CouponPercent = 10
)

// OrderCreator 下单依赖的后端能力
type OrderCreator interface {
	CreateOrder(ctx context.Context, token string, req backend.OrderCreate) (*backend.Order, error)
}

// UseCase 结算用例
// 线性流程,不可重试,无幂等键:
// 校验收货地址和购物车 → 本地匹配优惠码 → 提交一次下单请求 →
// 成功清空购物车,失败保持购物车原样并上抛后端错误
type UseCase struct {
	orders      OrderCreator
	carts       *cartapp.Store
	shippingFee int64
}

// NewUseCase 创建结算用例
func NewUseCase(orders OrderCreator, carts *cartapp.Store, shippingFee int64) *UseCase {
	return &UseCase{
		orders:      orders,
		carts:       carts,
		shippingFee: shippingFee,
	}
}

// Request 结算请求
type Request struct {
	ShippingAddress string
	PaymentMethodID string
	CouponCode      string
}

// Preview 金额预览
// 仅供展示:后端订单响应里的total_amount才是权威金额
type Preview struct {
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	ShippingFee int64 `json:"shipping_fee"`
	Total       int64 `json:"total"`
}

// Result 结算结果
type Result struct {
	Order   *backend.Order `json:"order"`
	Preview Preview        `json:"preview"`
}

// BuildPreview 按当前购物车和优惠码计算金额预览
// 优惠码不匹配时返回ErrInvalidCoupon,金额保持未打折
func (uc *UseCase) BuildPreview(c *domaincart.Cart, couponCode string) (Preview, error) {
	subtotal := c.TotalAmount()
	p := Preview{
		Subtotal:    subtotal,
		ShippingFee: uc.shippingFee,
		Total:       subtotal + uc.shippingFee,
	}

	code := strings.TrimSpace(couponCode)
	if code == "" {
		return p, nil
	}
	if code != CouponCode {
		return p, apperrors.ErrInvalidCoupon
	}

	p.Discount = int64(math.Round(float64(subtotal) * CouponPercent / 100))
	p.Total = subtotal - p.Discount + uc.shippingFee
	return p, nil
}

// Execute 执行结算
// 本地校验不通过时不发起任何网络请求
func (uc *UseCase) Execute(ctx context.Context, token, owner string, req Request) (*Result, error) {
	// 1. 本地校验:收货地址非空
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return nil, apperrors.ErrEmptyAddress
	}

	// 2. 本地校验:购物车非空
	c := uc.carts.Get(ctx, owner)
	if c.IsEmpty() {
		return nil, apperrors.ErrEmptyCart
	}

	// 3. 优惠码本地匹配
	preview, err := uc.BuildPreview(c, req.CouponCode)
	if err != nil {
		return nil, err
	}

	// 4. 购物车序列化为订单行,提交一次下单请求
	items := make([]backend.OrderItem, 0, c.Len())
	for _, it := range c.Items() {
		items = append(items, backend.OrderItem{
			BookID:   it.BookID,
			Quantity: it.Quantity,
		})
	}

	order, err := uc.orders.CreateOrder(ctx, token, backend.OrderCreate{
		ShippingAddress: req.ShippingAddress,
		PaymentMethodID: req.PaymentMethodID,
		VoucherCode:     strings.TrimSpace(req.CouponCode),
		Items:           items,
	})
	if err != nil {
		// 失败保持购物车原样,错误上抛给页面展示
		return nil, err
	}

	// 5. 成功后清空购物车
	// 清空失败只记日志意义不大,不影响下单结果
	_ = uc.carts.Clear(ctx, owner)

	return &Result{Order: order, Preview: preview}, nil
}
