package session

import "time"

// State 会话状态
// 三态状态机:
// anonymous(无Token) → unverified(有Token未向后端确认) → authenticated(已确认)
// 任何一步验证失败都会回到anonymous
type State string

const (
	StateAnonymous     State = "anonymous"
	StateUnverified    State = "unverified"
	StateAuthenticated State = "authenticated"
)

// User 会话缓存的用户资料
// 字段与后端用户记录1:1,只用于展示和表单回填
type User struct {
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"` // admin | customer
	CreatedAt string `json:"created_at,omitempty"`
}

// IsAdmin 是否为管理员
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// Session 用户会话
type Session struct {
	Token      string    `json:"token"`
	User       User      `json:"user"`
	VerifiedAt time.Time `json:"verified_at"` // 最近一次向后端确认成功的时间
}
