package dto

// ReviewCreateRequest 发表评论请求
type ReviewCreateRequest struct {
	BookID  string `json:"book_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// ReviewUpdateRequest 修改评论请求
type ReviewUpdateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// ContactCreateRequest 联系我们留言请求
// 游客留言需要姓名和邮箱，登录用户可省略（后端从Token识别）
type ContactCreateRequest struct {
	Subject  string `json:"subject" binding:"required,max=200"`
	Message  string `json:"message" binding:"required"`
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
}
