package backend

import (
	"context"
	"strconv"
)

// AdminCategory 分类记录(后台)
type AdminCategory struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	BookCount    int    `json:"book_count"`
	TotalStock   int    `json:"total_stock"`
}

// AdminCategoryCreate 创建分类请求(后台)
type AdminCategoryCreate struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// AdminCategoryList 分类列表响应(后台)
type AdminCategoryList struct {
	Total      int64           `json:"total"`
	Categories []AdminCategory `json:"categories"`
}

// ListCategoriesAdmin 分类列表(后台)
func (c *Client) ListCategoriesAdmin(ctx context.Context, token string, skip, limit int) (*AdminCategoryList, error) {
	var result AdminCategoryList
	resp, err := c.request(ctx, token).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/api/admin/categories")
	if err := check(resp, err, "获取分类列表失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCategoryAdmin 分类详情(后台)
func (c *Client) GetCategoryAdmin(ctx context.Context, token, categoryID string) (*AdminCategory, error) {
	var result AdminCategory
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/admin/categories/" + categoryID)
	if err := check(resp, err, "获取分类详情失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateCategoryAdmin 创建分类(后台)
func (c *Client) CreateCategoryAdmin(ctx context.Context, token string, req AdminCategoryCreate) (*AdminCategory, error) {
	var result AdminCategory
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/admin/categories/")
	if err := check(resp, err, "创建分类失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateCategoryAdmin 更新分类名称(后台)
func (c *Client) UpdateCategoryAdmin(ctx context.Context, token, categoryID, categoryName string) (*AdminCategory, error) {
	var result AdminCategory
	resp, err := c.request(ctx, token).
		SetBody(map[string]string{"category_name": categoryName}).
		SetResult(&result).
		Put("/api/admin/categories/" + categoryID)
	if err := check(resp, err, "更新分类失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCategoryAdmin 删除分类(后台)
func (c *Client) DeleteCategoryAdmin(ctx context.Context, token, categoryID string) error {
	resp, err := c.request(ctx, token).
		Delete("/api/admin/categories/" + categoryID)
	return check(resp, err, "删除分类失败")
}
