package dto

// ListQuery 后台列表通用查询参数
// skip/limit分页风格与后端保持一致（不是page/page_size）
type ListQuery struct {
	Skip   int    `form:"skip,default=0" binding:"min=0"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=100"`
	Search string `form:"search"`
}

// AdminBookCreateRequest 后台新增图书请求
type AdminBookCreateRequest struct {
	Title           string `json:"title" binding:"required"`
	Author          string `json:"author" binding:"required"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	CategoryID      string `json:"category_id" binding:"required"`
	Price           int64  `json:"price" binding:"required,min=0"`
	StockQuantity   int    `json:"stock_quantity" binding:"min=0"`
	Description     string `json:"description"`
	CoverImageURL   string `json:"cover_image_url"`
}

// AdminBookUpdateRequest 后台修改图书请求
// 全部字段可选，零值字段不提交给后端
type AdminBookUpdateRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	CategoryID      string `json:"category_id"`
	Price           int64  `json:"price" binding:"omitempty,min=0"`
	StockQuantity   int    `json:"stock_quantity" binding:"omitempty,min=0"`
	Description     string `json:"description"`
	CoverImageURL   string `json:"cover_image_url"`
}

// AdminStockUpdateRequest 后台调整库存请求
type AdminStockUpdateRequest struct {
	StockQuantity int `json:"stock_quantity" binding:"min=0"`
}

// AdminCategoryCreateRequest 后台新增分类请求
type AdminCategoryCreateRequest struct {
	CategoryID   string `json:"category_id" binding:"required"`
	CategoryName string `json:"category_name" binding:"required,max=100"`
}

// AdminCategoryUpdateRequest 后台修改分类请求
type AdminCategoryUpdateRequest struct {
	CategoryName string `json:"category_name" binding:"required,max=100"`
}

// AdminUserCreateRequest 后台新增用户请求
type AdminUserCreateRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

// AdminUserUpdateRequest 后台修改用户请求
type AdminUserUpdateRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

// OrderStatusUpdateRequest 后台修改订单状态请求
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=processing confirmed shipping completed cancelled"`
}

// ContactReplyRequest 后台回复留言请求
type ContactReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}
