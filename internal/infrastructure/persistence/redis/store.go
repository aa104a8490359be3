package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
	apperrors "github.com/ute/bookshop/pkg/errors"
)

// Store Redis实现的键值存储
// Key规范：session:{hash}、cart:{owner}，冒号分隔命名空间便于管理
type Store struct {
	client *redis.Client
}

// NewStore 创建Redis存储
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, "读取存储失败")
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入存储失败")
	}
	return nil
}

func (s *Store) Del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, "删除存储失败")
	}
	return nil
}
