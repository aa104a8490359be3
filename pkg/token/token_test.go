package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sign 用任意密钥签一个测试Token
// Peek不验签，密钥内容无所谓
func sign(t *testing.T, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("签发测试Token失败: %v", err)
	}
	return s
}

func TestPeek(t *testing.T) {
	t.Run("正常解码", func(t *testing.T) {
		raw := sign(t, Claims{
			UserID: "u-1",
			Role:   "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := Peek(raw)
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}
		if claims.UserID != "u-1" {
			t.Errorf("UserID = %s, 期望 u-1", claims.UserID)
		}
		if !claims.IsAdmin() {
			t.Error("IsAdmin() = false, 期望 true")
		}
		if claims.IsExpired() {
			t.Error("IsExpired() = true, 期望 false")
		}
	})

	t.Run("格式错误的Token", func(t *testing.T) {
		if _, err := Peek("not-a-jwt"); err == nil {
			t.Error("格式错误的Token应该返回错误")
		}
	})

	t.Run("已过期的Token仍可解码", func(t *testing.T) {
		raw := sign(t, Claims{
			UserID: "u-2",
			Role:   "customer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		claims, err := Peek(raw)
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}
		if !claims.IsExpired() {
			t.Error("IsExpired() = false, 期望 true")
		}
		if claims.IsAdmin() {
			t.Error("customer角色IsAdmin() = true, 期望 false")
		}
	})

	t.Run("没有exp字段视为未过期", func(t *testing.T) {
		raw := sign(t, Claims{UserID: "u-3", Role: "customer"})

		claims, err := Peek(raw)
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}
		if claims.IsExpired() {
			t.Error("没有exp的Token不应判为过期")
		}
	})
}
