package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ute/bookshop/internal/domain/session"
	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
	apperrors "github.com/ute/bookshop/pkg/errors"
)

// fakeBackend 可编程的后端校验桩
type fakeBackend struct {
	user  *session.User
	err   error
	calls int
}

func (f *fakeBackend) GetProfile(_ context.Context, _ string) (*session.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestStore_ResolveAnonymous(t *testing.T) {
	s := NewStore(store.NewMemStore(), &fakeBackend{}, time.Hour)

	sess, state := s.Resolve(context.Background(), "")
	assert.Nil(t, sess)
	assert.Equal(t, session.StateAnonymous, state)
}

// TestStore_ResolveUnverifiedSuccess 未验证Token经后端确认后转authenticated并缓存
func TestStore_ResolveUnverifiedSuccess(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{user: &session.User{ID: "u-1", Fullname: "测试用户", Role: "customer"}}
	s := NewStore(store.NewMemStore(), backend, time.Hour)

	sess, state := s.Resolve(ctx, "tok-1")
	require.NotNil(t, sess)
	assert.Equal(t, session.StateAuthenticated, state)
	assert.Equal(t, "u-1", sess.User.ID)
	assert.Equal(t, 1, backend.calls)

	// 第二次解析命中缓存,不再请求后端
	_, state = s.Resolve(ctx, "tok-1")
	assert.Equal(t, session.StateAuthenticated, state)
	assert.Equal(t, 1, backend.calls)
}

// TestStore_ResolveVerifyFailureClears 验证失败清除会话,回到anonymous
func TestStore_ResolveVerifyFailureClears(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{err: apperrors.ErrSessionExpired}
	s := NewStore(store.NewMemStore(), backend, time.Hour)

	sess, state := s.Resolve(ctx, "tok-bad")
	assert.Nil(t, sess)
	assert.Equal(t, session.StateAnonymous, state)
}

// TestStore_LoginThenLogout 登录缓存会话,登出后回到需重新验证的状态
func TestStore_LoginThenLogout(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{err: apperrors.ErrSessionExpired}
	s := NewStore(store.NewMemStore(), backend, time.Hour)

	require.NoError(t, s.Login(ctx, "tok-1", session.User{ID: "u-1", Role: "admin"}))

	sess, state := s.Resolve(ctx, "tok-1")
	require.NotNil(t, sess)
	assert.Equal(t, session.StateAuthenticated, state)
	assert.True(t, sess.User.IsAdmin())

	require.NoError(t, s.Logout(ctx, "tok-1"))

	// 缓存没了,后端又拒绝 → anonymous
	sess, state = s.Resolve(ctx, "tok-1")
	assert.Nil(t, sess)
	assert.Equal(t, session.StateAnonymous, state)
}

// TestStore_InvalidateOn401 任何接口的401都会触发会话清理
func TestStore_InvalidateOn401(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{err: apperrors.ErrSessionExpired}
	s := NewStore(store.NewMemStore(), backend, time.Hour)

	require.NoError(t, s.Login(ctx, "tok-1", session.User{ID: "u-1"}))
	s.Invalidate(ctx, "tok-1")

	sess, state := s.Resolve(ctx, "tok-1")
	assert.Nil(t, sess)
	assert.Equal(t, session.StateAnonymous, state)
}
