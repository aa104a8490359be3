package dto

// AddToCartRequest 加入购物车请求
// 只需要图书ID，标题/价格/库存等快照信息由服务端向后端查询后写入
type AddToCartRequest struct {
	BookID string `json:"book_id" binding:"required"`
}

// UpdateQuantityRequest 修改购物车数量请求
// quantity<1时整行移除，由领域层处理，这里不做下限校验
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest 结算下单请求
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
	CouponCode      string `json:"coupon_code"`
}
