package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/ute/bookshop/internal/domain/session"
	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
)

// ProfileFetcher 会话校验依赖的后端能力
// 由backend.Client实现;接口定义在使用方,便于测试替换
type ProfileFetcher interface {
	GetProfile(ctx context.Context, token string) (*session.User, error)
}

// Store 会话存储
// 三态解析:
//   - 无Token → anonymous
//   - 有Token且存储中有已验证的会话 → authenticated
//   - 有Token但存储中没有 → unverified,向后端确认一次:
//     成功则缓存并转authenticated,失败则清除回到anonymous
type Store struct {
	kv      store.Store
	backend ProfileFetcher
	ttl     time.Duration
}

// NewStore 创建会话存储
func NewStore(kv store.Store, backend ProfileFetcher, ttl time.Duration) *Store {
	return &Store{kv: kv, backend: backend, ttl: ttl}
}

// sessionKey 会话key
// 不直接用原始Token做key,取SHA-256摘要避免令牌落入存储的key空间
func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:16])
}

// Login 凭证交换成功后缓存会话
// 凭证交换本身由调用方(登录接口)完成,这里只负责落会话
func (s *Store) Login(ctx context.Context, token string, user session.User) error {
	sess := session.Session{
		Token:      token,
		User:       user,
		VerifiedAt: time.Now(),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, sessionKey(token), data, s.ttl)
}

// Resolve 解析当前会话状态
// 返回会话(authenticated时非nil)和状态;unverified会先向后端确认
func (s *Store) Resolve(ctx context.Context, token string) (*session.Session, session.State) {
	if token == "" {
		return nil, session.StateAnonymous
	}

	// 已有缓存会话 → authenticated
	if data, err := s.kv.Get(ctx, sessionKey(token)); err == nil {
		var sess session.Session
		if err := json.Unmarshal(data, &sess); err == nil && sess.Token == token {
			return &sess, session.StateAuthenticated
		}
		// 缓存损坏,走重新验证
		_ = s.kv.Del(ctx, sessionKey(token))
	}

	// unverified → 向后端确认
	user, err := s.backend.GetProfile(ctx, token)
	if err != nil {
		// 验证失败:清除会话,回到anonymous
		_ = s.kv.Del(ctx, sessionKey(token))
		return nil, session.StateAnonymous
	}

	if cacheErr := s.Login(ctx, token, *user); cacheErr != nil {
		// 缓存失败不影响本次请求的登录态
		return &session.Session{Token: token, User: *user, VerifiedAt: time.Now()}, session.StateAuthenticated
	}
	return &session.Session{Token: token, User: *user, VerifiedAt: time.Now()}, session.StateAuthenticated
}

// Logout 无条件清除会话
func (s *Store) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.kv.Del(ctx, sessionKey(token))
}

// Invalidate 会话过期时的清理(后端返回401后调用)
func (s *Store) Invalidate(ctx context.Context, token string) {
	_ = s.Logout(ctx, token)
}
