package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewWithDetail 携带后端detail信息的错误
// 用途：后端返回非2xx时，把响应体里的detail透传给用户
func NewWithDetail(code int, detail string) *AppError {
	if detail == "" {
		return New(code, "请求失败，请稍后重试")
	}
	return New(code, detail)
}

// Wrap 包装系统错误（如网络错误、存储错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（后端接口调用失败、存储异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal     = 50000 // 内部错误
	ErrCodeBackendError = 50001 // 后端接口错误
	ErrCodeStoreError   = 50002 // 存储错误
	ErrCodeNetworkError = 50003 // 网络传输失败

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized   = 40100 // 未登录
	ErrCodeSessionExpired = 40102 // 会话已过期（后端返回401）
	ErrCodeForbidden      = 40104 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound      = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound  = 40402 // 图书不存在
	ErrCodeOrderNotFound = 40403 // 订单不存在
	ErrCodeNotInCart     = 40404 // 购物车中无此商品

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError = 40000 // 业务错误(通用)
	ErrCodeStockLimited  = 40001 // 购买数量超过库存
	ErrCodeEmptyCart     = 40002 // 购物车为空
	ErrCodeInvalidCoupon = 40003 // 优惠码无效

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
	ErrCodeEmptyAddress  = 40902 // 收货地址为空
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal     = New(ErrCodeInternal, "系统内部错误")
	ErrBackendError = New(ErrCodeBackendError, "后端服务异常")
	ErrStoreError   = New(ErrCodeStoreError, "存储服务错误")
	ErrNetworkError = New(ErrCodeNetworkError, "网络请求失败，请检查网络后重试")

	// 认证授权
	ErrUnauthorized   = New(ErrCodeUnauthorized, "请先登录")
	ErrSessionExpired = New(ErrCodeSessionExpired, "登录已过期，请重新登录")
	ErrForbidden      = New(ErrCodeForbidden, "无权限访问")

	// 资源不存在
	ErrBookNotFound  = New(ErrCodeBookNotFound, "图书不存在")
	ErrOrderNotFound = New(ErrCodeOrderNotFound, "订单不存在")
	ErrNotInCart     = New(ErrCodeNotInCart, "购物车中没有该商品")

	// 业务规则
	ErrStockLimited  = New(ErrCodeStockLimited, "购买数量已达到库存上限")
	ErrEmptyCart     = New(ErrCodeEmptyCart, "购物车为空，无法下单")
	ErrInvalidCoupon = New(ErrCodeInvalidCoupon, "优惠码无效")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrEmptyAddress  = New(ErrCodeEmptyAddress, "收货地址不能为空")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// IsSessionExpired 判断是否为会话过期错误（后端401）
// 会话过期需要特殊处理：清除本地会话并跳转登录页
func IsSessionExpired(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == ErrCodeSessionExpired
	}
	return false
}
