package dto

// LoginRequest HTTP层登录请求
// 说明：HTTP层的DTO，包含参数验证tag
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest HTTP层注册请求
type RegisterRequest struct {
	Fullname string `json:"fullname" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	Address  string `json:"address"`
}

// ProfileUpdateRequest 个人信息更新请求
// 全部字段可选，空字段不传给后端
type ProfileUpdateRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
