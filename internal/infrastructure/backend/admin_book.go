package backend

import (
	"context"
	"strconv"
)

// AdminBook 图书记录(后台)
type AdminBook struct {
	BookID          string `json:"book_id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	CategoryID      string `json:"category_id"`
	CategoryName    string `json:"category_name"`
	Price           int64  `json:"price"`
	StockQuantity   int    `json:"stock_quantity"`
	SoldQuantity    int    `json:"sold_quantity"`
	Description     string `json:"description"`
	CoverImageURL   string `json:"cover_image_url"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// AdminBookCreate 创建图书请求(后台)
type AdminBookCreate struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	CategoryID      string `json:"category_id"`
	Price           int64  `json:"price"`
	StockQuantity   int    `json:"stock_quantity,omitempty"`
	Description     string `json:"description,omitempty"`
	CoverImageURL   string `json:"cover_image_url,omitempty"`
}

// AdminBookUpdate 更新图书请求(后台),零值字段不提交
type AdminBookUpdate struct {
	Title           string `json:"title,omitempty"`
	Author          string `json:"author,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	CategoryID      string `json:"category_id,omitempty"`
	Price           int64  `json:"price,omitempty"`
	StockQuantity   int    `json:"stock_quantity,omitempty"`
	Description     string `json:"description,omitempty"`
	CoverImageURL   string `json:"cover_image_url,omitempty"`
}

// AdminBookList 图书列表响应(后台)
type AdminBookList struct {
	Total int64       `json:"total"`
	Books []AdminBook `json:"books"`
}

// ListBooksAdmin 图书列表(后台),支持skip/limit分页、关键字搜索和分类过滤
func (c *Client) ListBooksAdmin(ctx context.Context, token string, skip, limit int, search, categoryID string) (*AdminBookList, error) {
	req := c.request(ctx, token).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if categoryID != "" {
		req.SetQueryParam("category_id", categoryID)
	}

	var result AdminBookList
	resp, err := req.SetResult(&result).Get("/api/admin/books")
	if err := check(resp, err, "获取图书列表失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBookAdmin 图书详情(后台)
func (c *Client) GetBookAdmin(ctx context.Context, token, bookID string) (*AdminBook, error) {
	var result AdminBook
	resp, err := c.request(ctx, token).
		SetResult(&result).
		Get("/api/admin/books/" + bookID)
	if err := check(resp, err, "获取图书详情失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateBookAdmin 创建图书(后台)
func (c *Client) CreateBookAdmin(ctx context.Context, token string, req AdminBookCreate) (*AdminBook, error) {
	var result AdminBook
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/admin/books/")
	if err := check(resp, err, "创建图书失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateBookAdmin 更新图书(后台)
func (c *Client) UpdateBookAdmin(ctx context.Context, token, bookID string, req AdminBookUpdate) (*AdminBook, error) {
	var result AdminBook
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Put("/api/admin/books/" + bookID)
	if err := check(resp, err, "更新图书失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteBookAdmin 删除图书(后台)
func (c *Client) DeleteBookAdmin(ctx context.Context, token, bookID string) error {
	resp, err := c.request(ctx, token).
		Delete("/api/admin/books/" + bookID)
	return check(resp, err, "删除图书失败")
}

// UpdateStockAdmin 调整库存(后台)
// 后端以query参数接收新库存
func (c *Client) UpdateStockAdmin(ctx context.Context, token, bookID string, stockQuantity int) (*AdminBook, error) {
	var result AdminBook
	resp, err := c.request(ctx, token).
		SetQueryParam("stock_quantity", strconv.Itoa(stockQuantity)).
		SetResult(&result).
		Patch("/api/admin/books/" + bookID + "/stock")
	if err := check(resp, err, "调整库存失败"); err != nil {
		return nil, err
	}
	return &result, nil
}
