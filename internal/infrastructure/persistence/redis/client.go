package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ute/bookshop/internal/infrastructure/config"
)

// NewClient 创建Redis客户端
// 设计说明：
// 1. 配置连接池参数（PoolSize、MinIdleConns）
// 2. 配置超时参数（DialTimeout、ReadTimeout、WriteTimeout）
// 3. 测试连接可用性
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Store.Redis.Addr(),
		Password:     cfg.Store.Redis.Password,
		DB:           cfg.Store.Redis.DB,
		PoolSize:     cfg.Store.Redis.PoolSize,
		MinIdleConns: cfg.Store.Redis.MinIdleConns,
		DialTimeout:  cfg.Store.Redis.DialTimeout,
		ReadTimeout:  cfg.Store.Redis.ReadTimeout,
		WriteTimeout: cfg.Store.Redis.WriteTimeout,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis连接失败: %w", err)
	}

	return client, nil
}
