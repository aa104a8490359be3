package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ute/bookshop/internal/domain/cart"
	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
)

// Store 带持久化的购物车存储
// 设计说明：
//  1. 每个owner一个key(cart:{owner}),全量行项目序列化保存
//  2. 每次变更后立即写回;读取时反序列化,JSON损坏视为空购物车
//  3. 同一owner的并发变更是读-改-写,后写覆盖(last-write-wins),
//     与来源实现的跨标签页行为一致,作为已接受的限制保留
type Store struct {
	kv  store.Store
	ttl time.Duration
}

// NewStore 创建购物车存储
// ttl<=0表示购物车不过期
func NewStore(kv store.Store, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

func cartKey(owner string) string {
	return "cart:" + owner
}

// Get 读取owner的购物车
// key不存在或内容损坏都返回空购物车,不报错
func (s *Store) Get(ctx context.Context, owner string) *cart.Cart {
	data, err := s.kv.Get(ctx, cartKey(owner))
	if err != nil {
		return cart.New()
	}

	var items []cart.Item
	if err := json.Unmarshal(data, &items); err != nil {
		// 损坏的序列化内容按空购物车处理,同时清掉脏数据
		_ = s.kv.Del(ctx, cartKey(owner))
		return cart.New()
	}
	return cart.FromItems(items)
}

// save 全量写回
func (s *Store) save(ctx context.Context, owner string, c *cart.Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, cartKey(owner), data, s.ttl)
}

// Add 加入购物车并持久化
// 返回变更后的购物车;数量被钳制时返回cart.ErrStockLimited,
// 此时钳制后的状态同样已持久化,错误仅用于提示用户
func (s *Store) Add(ctx context.Context, owner string, item cart.Item) (*cart.Cart, error) {
	c := s.Get(ctx, owner)
	addErr := c.Add(item)
	if addErr != nil && !errors.Is(addErr, cart.ErrStockLimited) {
		return c, addErr
	}
	if err := s.save(ctx, owner, c); err != nil {
		return c, err
	}
	return c, addErr
}

// SetQuantity 设置数量并持久化
func (s *Store) SetQuantity(ctx context.Context, owner, bookID string, quantity int) (*cart.Cart, error) {
	c := s.Get(ctx, owner)
	setErr := c.SetQuantity(bookID, quantity)
	if setErr != nil && !errors.Is(setErr, cart.ErrStockLimited) {
		return c, setErr
	}
	if err := s.save(ctx, owner, c); err != nil {
		return c, err
	}
	return c, setErr
}

// Remove 移除商品并持久化
func (s *Store) Remove(ctx context.Context, owner, bookID string) (*cart.Cart, error) {
	c := s.Get(ctx, owner)
	if err := c.Remove(bookID); err != nil {
		return c, err
	}
	if err := s.save(ctx, owner, c); err != nil {
		return c, err
	}
	return c, nil
}

// Merge 把from的购物车并入to并删除from
// 登录时调用:游客购物车并入用户购物车,同一图书数量相加后钳制
func (s *Store) Merge(ctx context.Context, from, to string) error {
	guest := s.Get(ctx, from)
	if guest.IsEmpty() {
		return nil
	}

	c := s.Get(ctx, to)
	c.Merge(guest.Items())
	if err := s.save(ctx, to, c); err != nil {
		return err
	}
	return s.kv.Del(ctx, cartKey(from))
}

// Clear 清空owner的购物车
func (s *Store) Clear(ctx context.Context, owner string) error {
	return s.kv.Del(ctx, cartKey(owner))
}
