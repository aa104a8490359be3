package backend

import (
	"context"
	"strconv"
)

// ContactCreate 创建联系请求
// 游客留言时full_name/email必填,登录用户由后端从Token取
type ContactCreate struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Contact 联系记录
// 状态: pending | resolved
type Contact struct {
	ContactID     int    `json:"contact_id"`
	UserID        string `json:"user_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	AdminResponse string `json:"admin_response"`
	SentAt        string `json:"sent_at"`
	RespondedAt   string `json:"responded_at"`
}

// ContactList 联系列表响应(后台)
type ContactList struct {
	Total    int64     `json:"total"`
	Contacts []Contact `json:"contacts"`
}

// Notification 通知(管理员已回复的联系)
type Notification struct {
	ContactID     int    `json:"contact_id"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	AdminResponse string `json:"admin_response"`
	RespondedAt   string `json:"responded_at"`
}

// CreateContact 提交联系(公开或登录后)
func (c *Client) CreateContact(ctx context.Context, token string, req ContactCreate) (*Contact, error) {
	var result Contact
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/contacts/")
	if err := check(resp, err, "提交联系失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// MyContacts 查询当前用户的联系记录
func (c *Client) MyContacts(ctx context.Context, token string) ([]Contact, error) {
	var result []Contact
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/contacts/my-contacts")
	if err := check(resp, err, "获取联系记录失败"); err != nil {
		return nil, err
	}
	return result, nil
}

// Notifications 查询当前用户的通知
func (c *Client) Notifications(ctx context.Context, token string) ([]Notification, error) {
	var result []Notification
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/contacts/notifications")
	if err := check(resp, err, "获取通知失败"); err != nil {
		return nil, err
	}
	return result, nil
}

// ListContactsAdmin 联系列表(管理员)
// status非空时按pending/resolved过滤
func (c *Client) ListContactsAdmin(ctx context.Context, token string, skip, limit int, status string) (*ContactList, error) {
	req := c.request(ctx, token).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if status != "" {
		req.SetQueryParam("status", status)
	}

	var result ContactList
	resp, err := req.SetResult(&result).Get("/api/contacts/admin")
	if err := check(resp, err, "获取联系列表失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetContactAdmin 联系详情(管理员)
func (c *Client) GetContactAdmin(ctx context.Context, token string, contactID int) (*Contact, error) {
	var result Contact
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/contacts/admin/" + strconv.Itoa(contactID))
	if err := check(resp, err, "获取联系详情失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReplyContactAdmin 回复联系(管理员)
func (c *Client) ReplyContactAdmin(ctx context.Context, token string, contactID int, adminResponse string) (*Contact, error) {
	var result Contact
	resp, err := c.request(ctx, token).
		SetBody(map[string]string{"admin_response": adminResponse}).
		SetResult(&result).
		Put("/api/contacts/admin/" + strconv.Itoa(contactID) + "/reply")
	if err := check(resp, err, "回复联系失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteContactAdmin 删除联系(管理员)
func (c *Client) DeleteContactAdmin(ctx context.Context, token string, contactID int) error {
	resp, err := c.request(ctx, token).
		Delete("/api/contacts/admin/" + strconv.Itoa(contactID))
	return check(resp, err, "删除联系失败")
}
