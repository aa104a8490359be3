package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	cartapp "github.com/ute/bookshop/internal/application/cart"
	checkoutapp "github.com/ute/bookshop/internal/application/checkout"
	sessionapp "github.com/ute/bookshop/internal/application/session"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/infrastructure/config"
	"github.com/ute/bookshop/internal/infrastructure/persistence/redis"
	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
	"github.com/ute/bookshop/internal/interface/http/handler"
	"github.com/ute/bookshop/internal/interface/http/middleware"
	"github.com/ute/bookshop/internal/logger"

	httpiface "github.com/ute/bookshop/internal/interface/http"
)

// @title        网上书店前台服务
// @description  店面浏览/购物车/下单与后台管理的聚合入口，业务数据由后端REST服务持有
// @version      1.0
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	log := logger.Get(cfg.Log.Level == "debug")
	log.Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("backend", cfg.Backend.BaseURL).
		Str("store", cfg.Store.Driver).
		Msg("配置加载成功")

	// 键值存储：生产用Redis，本地开发可退化为内存
	var kv store.Store
	if cfg.Store.Driver == "redis" {
		client, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("初始化Redis失败")
		}
		kv = redis.NewStore(client)
	} else {
		kv = store.NewMemStore()
	}

	// 依赖注入（手动组装）
	// 后端客户端 ← 应用层 ← 处理器 ← 路由
	backendClient := backend.NewClient(cfg)
	sessions := sessionapp.NewStore(kv, backendClient, cfg.Session.TTL)
	carts := cartapp.NewStore(kv, 0)
	checkoutUC := checkoutapp.NewUseCase(backendClient, carts, cfg.Checkout.ShippingFee)

	cookieName := cfg.Session.CookieName
	handlers := httpiface.Handlers{
		Store:         handler.NewStoreHandler(backendClient),
		Auth:          handler.NewAuthHandler(backendClient, sessions, carts, cookieName, cfg.Session.CartCookieName, cfg.Session.TTL),
		Cart:          handler.NewCartHandler(backendClient, carts, checkoutUC, sessions, cookieName, cfg.Session.CartCookieName),
		Order:         handler.NewOrderHandler(backendClient, sessions, cookieName),
		Review:        handler.NewReviewHandler(backendClient, sessions, cookieName),
		Contact:       handler.NewContactHandler(backendClient, sessions, cookieName),
		Dashboard:     handler.NewDashboardHandler(backendClient, sessions, cookieName),
		AdminBook:     handler.NewAdminBookHandler(backendClient, sessions, cookieName),
		AdminCategory: handler.NewAdminCategoryHandler(backendClient, sessions, cookieName),
		AdminUser:     handler.NewAdminUserHandler(backendClient, sessions, cookieName),
		AdminOrder:    handler.NewAdminOrderHandler(backendClient, sessions, cookieName),
		AdminContact:  handler.NewAdminContactHandler(backendClient, sessions, cookieName),
	}

	authMw := middleware.NewAuthMiddleware(sessions, cookieName)
	guard := middleware.NewGuard(cookieName)
	r := httpiface.NewRouter(cfg, handlers, authMw, guard)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 优雅关闭：收到信号后给在途请求一个收尾窗口
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("收到退出信号，开始优雅关闭")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("服务异常退出")
	}
	log.Info().Msg("服务已停止")
}
