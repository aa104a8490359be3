package backend

import "context"

// BookSummary 图书列表项(店面)
type BookSummary struct {
	BookID        string `json:"book_id"`
	Title         string `json:"title"`
	Price         int64  `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
	CoverImageURL string `json:"cover_image_url"`
}

// BookDetail 图书详情(店面)
type BookDetail struct {
	BookID          string `json:"book_id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	Price           int64  `json:"price"`
	StockQuantity   int    `json:"stock_quantity"`
	SoldQuantity    int    `json:"sold_quantity"`
	Description     string `json:"description"`
	CoverImageURL   string `json:"cover_image_url"`
	CategoryName    string `json:"category_name"`
}

// ListBooks 查询图书列表(公开接口)
func (c *Client) ListBooks(ctx context.Context) ([]BookSummary, error) {
	var result []BookSummary
	resp, err := c.request(ctx, "").
		SetResult(&result).
		Get("/books")
	if err := check(resp, err, "获取图书列表失败"); err != nil {
		return nil, err
	}
	return result, nil
}

// GetBook 查询图书详情(公开接口)
func (c *Client) GetBook(ctx context.Context, bookID string) (*BookDetail, error) {
	var result BookDetail
	resp, err := c.request(ctx, "").
		SetResult(&result).
		Get("/books/" + bookID)
	if err := check(resp, err, "获取图书详情失败"); err != nil {
		return nil, err
	}
	return &result, nil
}
