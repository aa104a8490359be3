package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ute/bookshop/internal/logger"
	apperrors "github.com/ute/bookshop/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := cartStore.Add(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不返回给客户端
	if appErr.Err != nil {
		log := logger.Get()
		log.Error().
			Err(appErr.Err).
			Int("code", appErr.Code).
			Str("path", c.Request.URL.Path).
			Msg(appErr.Message)
	}

	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    nil,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
type PageData struct {
	List     interface{} `json:"list"`     // 数据列表
	Total    int64       `json:"total"`    // 总记录数
	Skip     int         `json:"skip"`     // 跳过条数
	Limit    int         `json:"limit"`    // 每页大小
	HasMore  bool        `json:"has_more"` // 是否还有下一页
	Returned int         `json:"returned"` // 本页实际条数
}

// NewPageData 创建分页数据
// 后端接口采用skip/limit分页，这里按同样口径封装
func NewPageData(list interface{}, total int64, skip, limit, returned int) *PageData {
	return &PageData{
		List:     list,
		Total:    total,
		Skip:     skip,
		Limit:    limit,
		HasMore:  int64(skip+returned) < total,
		Returned: returned,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, total int64, skip, limit, returned int) {
	Success(c, NewPageData(list, total, skip, limit, returned))
}
