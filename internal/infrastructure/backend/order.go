package backend

import (
	"context"
	"strconv"
)

// OrderItem 下单行项目
type OrderItem struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

// OrderCreate 创建订单请求
type OrderCreate struct {
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethodID string      `json:"payment_method_id"`
	VoucherCode     string      `json:"voucher_code,omitempty"`
	Items           []OrderItem `json:"items"`
}

// BookInOrder 订单明细内嵌的图书信息
type BookInOrder struct {
	BookID        string `json:"book_id"`
	Title         string `json:"title"`
	CoverImageURL string `json:"cover_image_url"`
}

// OrderDetail 订单明细行
type OrderDetail struct {
	DetailID  int          `json:"detail_id"`
	BookID    string       `json:"book_id"`
	Quantity  int          `json:"quantity"`
	UnitPrice int64        `json:"unit_price"`
	Book      *BookInOrder `json:"book"`
}

// Order 订单(后端所有,客户端只读写快照)
// 状态集合: processing | confirmed | shipping | completed | cancelled
type Order struct {
	OrderID           string        `json:"order_id"`
	UserID            string        `json:"user_id"`
	TotalAmount       int64         `json:"total_amount"`
	OrderStatus       string        `json:"order_status"`
	ShippingAddress   string        `json:"shipping_address"`
	PaymentMethodID   string        `json:"payment_method_id"`
	PaymentMethodName string        `json:"payment_method_name"`
	CreatedAt         string        `json:"created_at"`
	OrderDetails      []OrderDetail `json:"order_details"`
}

// OrderHistory 订单历史响应
type OrderHistory struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

// CancelOrderResponse 取消订单响应
type CancelOrderResponse struct {
	Message     string `json:"message"`
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
}

// CreateOrder 创建订单
// 购物车在这一刻被序列化成订单行,后端整单接受或整单拒绝
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderCreate) (*Order, error) {
	var result Order
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/orders/")
	if err := check(resp, err, "创建订单失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// MyOrders 查询当前用户订单历史
// status非空时按状态过滤
func (c *Client) MyOrders(ctx context.Context, token string, skip, limit int, status string) (*OrderHistory, error) {
	req := c.request(ctx, token).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if status != "" {
		req.SetQueryParam("status", status)
	}

	var result OrderHistory
	resp, err := req.SetResult(&result).Get("/api/orders/my-orders")
	if err := check(resp, err, "获取订单历史失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrder 查询订单详情
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*Order, error) {
	var result Order
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/orders/" + orderID)
	if err := check(resp, err, "获取订单详情失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelOrder 取消订单(仅processing状态可取消,由后端校验)
func (c *Client) CancelOrder(ctx context.Context, token, orderID string) (*CancelOrderResponse, error) {
	var result CancelOrderResponse
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Put("/api/orders/" + orderID + "/cancel")
	if err := check(resp, err, "取消订单失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateOrderStatus 更新订单状态(管理员)
// 后端以query参数接收新状态
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID, newStatus string) (*Order, error) {
	var result Order
	resp, err := c.request(ctx, token).
		SetQueryParam("new_status", newStatus).
		SetResult(&result).
		Put("/api/orders/admin/" + orderID + "/status")
	if err := check(resp, err, "更新订单状态失败"); err != nil {
		return nil, err
	}
	return &result, nil
}
