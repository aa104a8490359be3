package backend

import (
	"context"
	"strconv"
)

// Review 图书评论
type Review struct {
	ReviewID     int    `json:"review_id"`
	BookID       string `json:"book_id"`
	UserID       string `json:"user_id"`
	UserFullname string `json:"user_fullname"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"created_at"`
}

// RatingSummary 图书评分汇总
type RatingSummary struct {
	AverageRating      float64        `json:"average_rating"`
	TotalReviews       int            `json:"total_reviews"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// ReviewCreate 创建评论请求
type ReviewCreate struct {
	BookID  string `json:"book_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// ReviewUpdate 更新评论请求
type ReviewUpdate struct {
	Rating  int    `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// BookReviews 查询图书评论列表(公开接口)
func (c *Client) BookReviews(ctx context.Context, bookID string, skip, limit int) ([]Review, error) {
	var result []Review
	resp, err := c.request(ctx, "").
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/api/reviews/book/" + bookID)
	if err := check(resp, err, "获取评论列表失败"); err != nil {
		return nil, err
	}
	return result, nil
}

// BookRatingSummary 查询图书评分汇总(公开接口)
func (c *Client) BookRatingSummary(ctx context.Context, bookID string) (*RatingSummary, error) {
	var result RatingSummary
	resp, err := c.request(ctx, "").
		SetResult(&result).
		Get("/api/reviews/book/" + bookID + "/summary")
	if err := check(resp, err, "获取评分汇总失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateReview 创建评论
func (c *Client) CreateReview(ctx context.Context, token string, req ReviewCreate) (*Review, error) {
	var result Review
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/reviews/")
	if err := check(resp, err, "发表评论失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateReview 更新自己的评论
func (c *Client) UpdateReview(ctx context.Context, token string, reviewID int, req ReviewUpdate) (*Review, error) {
	var result Review
	resp, err := c.request(ctx, token).
		SetBody(req).
		SetResult(&result).
		Put("/api/reviews/" + strconv.Itoa(reviewID))
	if err := check(resp, err, "更新评论失败"); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteReview 删除自己的评论
func (c *Client) DeleteReview(ctx context.Context, token string, reviewID int) error {
	resp, err := c.request(ctx, token).
		Delete("/api/reviews/" + strconv.Itoa(reviewID))
	return check(resp, err, "删除评论失败")
}

// DeleteReviewAdmin 删除任意评论(管理员)
func (c *Client) DeleteReviewAdmin(ctx context.Context, token string, reviewID int) error {
	resp, err := c.request(ctx, token).
		Delete("/api/reviews/admin/" + strconv.Itoa(reviewID))
	return check(resp, err, "删除评论失败")
}
