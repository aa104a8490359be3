//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 设计说明：
// 1. Wire在编译期生成依赖组装代码，零运行时开销
// 2. 构造函数参数需要从Config提取的，写自定义Provider
// 3. 运行 `wire gen ./cmd/web` 生成wire_gen.go
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	cartapp "github.com/ute/bookshop/internal/application/cart"
	checkoutapp "github.com/ute/bookshop/internal/application/checkout"
	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/infrastructure/config"
	"github.com/ute/bookshop/internal/infrastructure/persistence/redis"
	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
	"github.com/ute/bookshop/internal/interface/http/handler"
	"github.com/ute/bookshop/internal/interface/http/middleware"

	httpiface "github.com/ute/bookshop/internal/interface/http"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	backend.NewClient,
	provideStore,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	provideSessions,
	provideCarts,
	provideCheckout,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	provideAuthMiddleware,
	provideGuard,
	provideHandlers,
	httpiface.NewRouter,
)

// provideStore 按配置选择键值存储实现
func provideStore(cfg *config.Config) (store.Store, error) {
	if cfg.Store.Driver == "redis" {
		client, err := redis.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return redis.NewStore(client), nil
	}
	return store.NewMemStore(), nil
}

// provideSessions 会话存储需要从Config提取TTL
func provideSessions(cfg *config.Config, kv store.Store, client *backend.Client) *sessionapp.Store {
	return sessionapp.NewStore(kv, client, cfg.Session.TTL)
}

// provideCarts 购物车不设过期，由用户自己清空
func provideCarts(kv store.Store) *cartapp.Store {
	return cartapp.NewStore(kv, 0)
}

// provideCheckout 结算用例需要从Config提取运费
func provideCheckout(cfg *config.Config, client *backend.Client, carts *cartapp.Store) *checkoutapp.UseCase {
	return checkoutapp.NewUseCase(client, carts, cfg.Checkout.ShippingFee)
}

func provideAuthMiddleware(cfg *config.Config, sessions *sessionapp.Store) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(sessions, cfg.Session.CookieName)
}

func provideGuard(cfg *config.Config) *middleware.Guard {
	return middleware.NewGuard(cfg.Session.CookieName)
}

// provideHandlers 组装全部HTTP处理器
func provideHandlers(
	cfg *config.Config,
	client *backend.Client,
	carts *cartapp.Store,
	checkout *checkoutapp.UseCase,
	sessions *sessionapp.Store,
) httpiface.Handlers {
	cookieName := cfg.Session.CookieName
	return httpiface.Handlers{
		Store:         handler.NewStoreHandler(client),
		Auth:          handler.NewAuthHandler(client, sessions, carts, cookieName, cfg.Session.CartCookieName, cfg.Session.TTL),
		Cart:          handler.NewCartHandler(client, carts, checkout, sessions, cookieName, cfg.Session.CartCookieName),
		Order:         handler.NewOrderHandler(client, sessions, cookieName),
		Review:        handler.NewReviewHandler(client, sessions, cookieName),
		Contact:       handler.NewContactHandler(client, sessions, cookieName),
		Dashboard:     handler.NewDashboardHandler(client, sessions, cookieName),
		AdminBook:     handler.NewAdminBookHandler(client, sessions, cookieName),
		AdminCategory: handler.NewAdminCategoryHandler(client, sessions, cookieName),
		AdminUser:     handler.NewAdminUserHandler(client, sessions, cookieName),
		AdminOrder:    handler.NewAdminOrderHandler(client, sessions, cookieName),
		AdminContact:  handler.NewAdminContactHandler(client, sessions, cookieName),
	}
}

// InitializeApp 构造完整的Gin引擎
// 返回的引擎已注册全部路由和中间件
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil
}
