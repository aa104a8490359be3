// Package http 组装HTTP路由
package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ute/bookshop/internal/infrastructure/config"
	"github.com/ute/bookshop/internal/interface/http/handler"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	"github.com/ute/bookshop/pkg/response"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Store         *handler.StoreHandler
	Auth          *handler.AuthHandler
	Cart          *handler.CartHandler
	Order         *handler.OrderHandler
	Review        *handler.ReviewHandler
	Contact       *handler.ContactHandler
	Dashboard     *handler.DashboardHandler
	AdminBook     *handler.AdminBookHandler
	AdminCategory *handler.AdminCategoryHandler
	AdminUser     *handler.AdminUserHandler
	AdminOrder    *handler.AdminOrderHandler
	AdminContact  *handler.AdminContactHandler
}

// NewRouter 创建并配置Gin引擎
func NewRouter(cfg *config.Config, h Handlers, auth *middleware.AuthMiddleware, guard *middleware.Guard) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(guard.Handle())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Swagger文档
	// 访问 http://localhost:3000/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// 店面（公开）
		books := api.Group("/books")
		{
			books.GET("", h.Store.ListBooks)
			books.GET("/:id", h.Store.BookDetail)
		}

		// 认证
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", h.Auth.Login)
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/logout", h.Auth.Logout)
		}

		// 个人资料（需要登录）
		me := api.Group("/users/me")
		me.Use(auth.RequireAuth())
		{
			me.GET("", h.Auth.Profile)
			me.PUT("", h.Auth.UpdateProfile)
		}

		// 购物车（游客可用，登录后自动切换归属）
		cart := api.Group("/cart")
		cart.Use(auth.Resolve())
		{
			cart.GET("", h.Cart.View)
			cart.DELETE("", h.Cart.Clear)
			cart.POST("/items", h.Cart.Add)
			cart.PUT("/items/:book_id", h.Cart.UpdateQuantity)
			cart.DELETE("/items/:book_id", h.Cart.Remove)
		}

		// 结算（需要登录）
		api.POST("/checkout", auth.RequireAuth(), h.Cart.Checkout)

		// 我的订单
		orders := api.Group("/orders")
		orders.Use(auth.RequireAuth())
		{
			orders.GET("", h.Order.MyOrders)
			orders.GET("/:id", h.Order.GetOrder)
			orders.PUT("/:id/cancel", h.Order.CancelOrder)
		}

		// 评论
		reviews := api.Group("/reviews")
		reviews.Use(auth.RequireAuth())
		{
			reviews.POST("", h.Review.Create)
			reviews.PUT("/:id", h.Review.Update)
			reviews.DELETE("/:id", h.Review.Delete)
		}

		// 联系我们（游客也能留言）
		api.POST("/contacts", auth.Resolve(), h.Contact.Create)
		api.GET("/contacts/my", auth.RequireAuth(), h.Contact.MyContacts)
		api.GET("/notifications", auth.RequireAuth(), h.Contact.Notifications)

		// 后台（需要管理员）
		admin := api.Group("/admin")
		admin.Use(auth.RequireAuth(), auth.RequireAdmin())
		{
			admin.GET("/dashboard", h.Dashboard.Overview)

			adminBooks := admin.Group("/books")
			{
				adminBooks.GET("", h.AdminBook.List)
				adminBooks.POST("", h.AdminBook.Create)
				adminBooks.GET("/:id", h.AdminBook.Get)
				adminBooks.PUT("/:id", h.AdminBook.Update)
				adminBooks.PATCH("/:id/stock", h.AdminBook.UpdateStock)
				adminBooks.DELETE("/:id", h.AdminBook.Delete)
			}

			adminCategories := admin.Group("/categories")
			{
				adminCategories.GET("", h.AdminCategory.List)
				adminCategories.POST("", h.AdminCategory.Create)
				adminCategories.GET("/:id", h.AdminCategory.Get)
				adminCategories.PUT("/:id", h.AdminCategory.Update)
				adminCategories.DELETE("/:id", h.AdminCategory.Delete)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", h.AdminUser.List)
				adminUsers.POST("", h.AdminUser.Create)
				adminUsers.GET("/:id", h.AdminUser.Get)
				adminUsers.PUT("/:id", h.AdminUser.Update)
				adminUsers.DELETE("/:id", h.AdminUser.Delete)
			}

			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("", h.AdminOrder.List)
				adminOrders.PUT("/:id/status", h.AdminOrder.UpdateStatus)
			}

			adminContacts := admin.Group("/contacts")
			{
				adminContacts.GET("", h.AdminContact.List)
				adminContacts.GET("/:id", h.AdminContact.Get)
				adminContacts.PUT("/:id/reply", h.AdminContact.Reply)
				adminContacts.DELETE("/:id", h.AdminContact.Delete)
			}

			admin.DELETE("/reviews/:id", h.Review.DeleteAdmin)
		}
	}

	return r
}
