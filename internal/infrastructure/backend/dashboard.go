package backend

import (
	"context"
	"strconv"
)

// DashboardStats 看板概览统计
type DashboardStats struct {
	Users struct {
		Total     int `json:"total"`
		Customers int `json:"customers"`
		Admins    int `json:"admins"`
	} `json:"users"`
	Orders struct {
		Total int `json:"total"`
	} `json:"orders"`
	Revenue struct {
		Total int64 `json:"total"`
	} `json:"revenue"`
	Books struct {
		Total int `json:"total"`
		Stock int `json:"stock"`
		Sold  int `json:"sold"`
	} `json:"books"`
}

// StatusBucket 单个订单状态的统计
type StatusBucket struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"`
}

// OrderStatusStats 按订单状态的统计
type OrderStatusStats struct {
	Processing StatusBucket `json:"processing"`
	Confirmed  StatusBucket `json:"confirmed"`
	Shipping   StatusBucket `json:"shipping"`
	Completed  StatusBucket `json:"completed"`
	Cancelled  StatusBucket `json:"cancelled"`
}

// MonthlyTrends 月度趋势(各数组按月份对齐)
type MonthlyTrends struct {
	Months    []string `json:"months"`
	Delivered []int    `json:"delivered"`
	Cancelled []int    `json:"cancelled"`
	Revenue   []int64  `json:"revenue"`
}

// GetDashboardStats 获取看板概览统计(管理员)
func (c *Client) GetDashboardStats(ctx context.Context, token string) (*DashboardStats, error) {
	var result DashboardStats
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/dashboard/stats")
	if err := check(resp, err, "获取看板统计失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrderStatusStats 获取订单状态统计(管理员)
func (c *Client) GetOrderStatusStats(ctx context.Context, token string) (*OrderStatusStats, error) {
	var result OrderStatusStats
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/dashboard/order-status")
	if err := check(resp, err, "获取订单状态统计失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMonthlyTrends 获取月度趋势(管理员)
func (c *Client) GetMonthlyTrends(ctx context.Context, token string, months int) (*MonthlyTrends, error) {
	if months <= 0 {
		months = 6
	}
	var result MonthlyTrends
	resp, err := c.request(ctx, token).
		SetQueryParam("months", strconv.Itoa(months)).
		SetResult(&result).
		Get("/api/dashboard/monthly-trends")
	if err := check(resp, err, "获取月度趋势失败"); err != nil {
		return nil, err
	}
	return &result, nil
}
