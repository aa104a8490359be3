package backend

import (
	"context"
	"strconv"
)

// AdminUser 用户记录(后台)
type AdminUser struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"` // admin | customer
	CreatedAt string `json:"created_at"`
}

// AdminUserCreate 创建用户请求(后台)
type AdminUserCreate struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role,omitempty"`
}

// AdminUserUpdate 更新用户请求(后台),零值字段不提交
type AdminUserUpdate struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role,omitempty"`
}

// AdminUserList 用户列表响应(后台)
type AdminUserList struct {
	Total int64       `json:"total"`
	Users []AdminUser `json:"users"`
}

// ListUsersAdmin 用户列表(后台),支持搜索与角色过滤
func (c *Client) ListUsersAdmin(ctx context.Context, token string, skip, limit int, search, role string) (*AdminUserList, error) {
	req := c.request(ctx, token).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if role != "" {
		req.SetQueryParam("role", role)
	}

	var result AdminUserList
	resp, err := req.SetResult(&result).Get("/api/admin/users")
	if err := check(resp, err, "获取用户列表失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUserAdmin 用户详情(后台)
func (c *Client) GetUserAdmin(ctx context.Context, token, userID string) (*AdminUser, error) {
	var result AdminUser
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/admin/users/" + userID)
	if err := check(resp, err, "获取用户详情失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUserAdmin 创建用户(后台)
func (c *Client) CreateUserAdmin(ctx context.Context, token string, req AdminUserCreate) (*AdminUser, error) {
	var result AdminUser
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/admin/users/")
	if err := check(resp, err, "创建用户失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateUserAdmin 更新用户(后台)
func (c *Client) UpdateUserAdmin(ctx context.Context, token, userID string, req AdminUserUpdate) (*AdminUser, error) {
	var result AdminUser
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Put("/api/admin/users/" + userID)
	if err := check(resp, err, "更新用户失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUserAdmin 删除用户(后台)
func (c *Client) DeleteUserAdmin(ctx context.Context, token, userID string) error {
	resp, err := c.request(ctx, token).
		Delete("/api/admin/users/" + userID)
	return check(resp, err, "删除用户失败")
}
