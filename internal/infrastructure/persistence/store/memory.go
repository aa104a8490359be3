package store

import (
	"context"
	"sync"
	"time"
)

// MemStore 进程内键值存储
// 用途：本地开发和单元测试，不依赖外部Redis
type MemStore struct {
	mu    sync.RWMutex
	items map[string]memItem
}

type memItem struct {
	value     []byte
	expiresAt time.Time // 零值表示不过期
}

// NewMemStore 创建内存存储
func NewMemStore() *MemStore {
	return &MemStore{
		items: make(map[string]memItem),
	}
}

func (ms *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	ms.mu.RLock()
	item, ok := ms.items[key]
	ms.mu.RUnlock()

	if !ok {
		return nil, ErrKeyNotFound
	}

	// 惰性过期
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		ms.mu.Lock()
		delete(ms.items, key)
		ms.mu.Unlock()
		return nil, ErrKeyNotFound
	}

	// 返回副本，避免调用方修改内部切片
	value := make([]byte, len(item.value))
	copy(value, item.value)
	return value, nil
}

func (ms *MemStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	item := memItem{value: stored}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}

	ms.mu.Lock()
	ms.items[key] = item
	ms.mu.Unlock()
	return nil
}

func (ms *MemStore) Del(_ context.Context, key string) error {
	ms.mu.Lock()
	delete(ms.items, key)
	ms.mu.Unlock()
	return nil
}
