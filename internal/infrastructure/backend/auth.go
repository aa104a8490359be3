package backend

import (
	"context"

	"github.com/ute/bookshop/internal/domain/session"
)

// LoginRequest 登录请求(后端以手机号+密码登录)
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        session.User `json:"user"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ProfileUpdateRequest 个人资料更新请求
type ProfileUpdateRequest struct {
	Fullname string `json:"fullname,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Login 用户登录
// 凭证交换由后端完成，成功后返回访问令牌和用户资料
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var result LoginResponse
	resp, err := c.request(ctx, "").
		SetBody(req).
		SetResult(&result).
		Post("/users/login")
	if err := check(resp, err, "登录失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register 用户注册
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var result RegisterResponse
	resp, err := c.request(ctx, "").
		SetBody(req).
		SetResult(&result).
		Post("/api/users/register")
	if err := check(resp, err, "注册失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProfile 获取当前登录用户资料
// 会话校验也走这个接口：成功说明Token有效
func (c *Client) GetProfile(ctx context.Context, token string) (*session.User, error) {
	var result session.User
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/users/me")
	if err := check(resp, err, "获取用户资料失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProfile 更新当前登录用户资料
func (c *Client) UpdateProfile(ctx context.Context, token string, req ProfileUpdateRequest) (*session.User, error) {
	var result session.User
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Put("/api/users/me")
	if err := check(resp, err, "更新用户资料失败"); err != nil {
		return nil, err
	}
	return &result, nil
}
