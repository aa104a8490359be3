package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/ute/bookshop/internal/infrastructure/config"
	apperrors "github.com/ute/bookshop/pkg/errors"
)

// Client 后端REST服务客户端
// 设计说明：
// 1. 每个资源一组方法(图书、订单、评论、联系、看板、后台管理)
// 2. 每个方法只发起一次HTTP请求：不重试、不退避，失败立刻上抛
// 3. 认证接口由调用方传入Bearer Token，未认证接口传空串
// 4. 后端返回401统一映射为会话过期错误，由上层清会话并跳转登录
type Client struct {
	http *resty.Client
}

// NewClient 创建后端客户端
func NewClient(cfg *config.Config) *Client {
	rc := resty.New().
		SetBaseURL(cfg.Backend.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	if cfg.Backend.Timeout > 0 {
		rc.SetTimeout(cfg.Backend.Timeout)
	}

	return &Client{http: rc}
}

// errorBody 后端错误响应体
// FastAPI风格：{"detail": "..."}
type errorBody struct {
	Detail string `json:"detail"`
}

// request 构造一次请求
// token非空时附加Authorization: Bearer <token>
func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// check 统一处理响应
// 错误分类：
// (a) 传输失败 → 通用网络错误
// (b) 非2xx → 取响应体detail作为错误消息，解析失败用fallback
// (c) 401 → 会话过期哨兵错误
func check(resp *resty.Response, err error, fallback string) error {
	if err != nil {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeNetworkError,
			Message: apperrors.ErrNetworkError.Message,
			Err:     err,
		}
	}

	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return apperrors.ErrSessionExpired
	}

	var body errorBody
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr != nil || body.Detail == "" {
		return apperrors.NewWithDetail(apperrors.ErrCodeBackendError, fallback)
	}

	code := apperrors.ErrCodeBackendError
	if resp.StatusCode() == http.StatusNotFound {
		code = apperrors.ErrCodeNotFound
	}
	return apperrors.NewWithDetail(code, body.Detail)
}
