package store

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound key不存在
var ErrKeyNotFound = errors.New("store: key not found")

// Store 键值存储适配器
// 设计说明：
// 1. 会话与购物车的持久化都经过这一个接口，不直接落到具体介质
// 2. 实现可替换：Redis（部署）、内存（开发、测试）
// 3. 同一个key的并发写入是后写覆盖（last-write-wins），购物车按此口径接受
type Store interface {
	// Get 读取key对应的值，key不存在时返回ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set 写入key，ttl<=0表示不过期
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Del 删除key，key不存在时不报错
	Del(ctx context.Context, key string) error
}
