package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/ute/bookshop/pkg/errors"
)

// Claims 后端签发的访问令牌Claims
// 设计说明：
// 1. 令牌由后端签发和验证，本服务没有签名密钥
// 2. 这里只做"窥视"：读取角色、过期时间用于路由守卫
// 3. 真正的鉴权仍由后端完成（任何接口返回401都会清除会话）
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Peek 解码Token的Claims（不验证签名）
// 注意：返回的Claims不可信任用于授权决策，仅用于路由跳转提示
func Peek(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, apperrors.ErrSessionExpired
	}
	return claims, nil
}

// IsExpired 判断Token是否已过期
// 没有exp字段的Token视为未过期（由后端判定）
func (c *Claims) IsExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}

// IsAdmin 判断是否为管理员角色
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
