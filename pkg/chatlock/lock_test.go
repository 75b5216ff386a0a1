package chatlock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*Locker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLocker(rdb), mr
}

func TestAcquireAndRelease(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()

	lease, err := locker.Acquire(ctx, 100, 0)
	require.NoError(t, err)

	// The key exists and holds the lease token.
	got, err := mr.Get("chatlock:100")
	require.NoError(t, err)
	assert.Equal(t, lease.token, got)
	assert.True(t, mr.TTL("chatlock:100") > 0)

	require.NoError(t, lease.Release(ctx))
	assert.False(t, mr.Exists("chatlock:100"))
}

func TestAcquire_Contention(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	lease, err := locker.Acquire(ctx, 100, 0)
	require.NoError(t, err)
	defer func() { _ = lease.Release(ctx) }()

	// A second acquisition on the same scope blocks; bound it with a
	// short deadline rather than waiting out the full retry budget.
	shortCtx, cancel := context.WithTimeout(ctx, 600*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(shortCtx, 100, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAcquire_DifferentScopesAreIndependent(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	a, err := locker.Acquire(ctx, 100, 0)
	require.NoError(t, err)
	defer func() { _ = a.Release(ctx) }()

	// Same chat, different thread: independent lock.
	b, err := locker.Acquire(ctx, 100, 55)
	require.NoError(t, err)
	defer func() { _ = b.Release(ctx) }()

	// Different chat entirely.
	c, err := locker.Acquire(ctx, 200, 0)
	require.NoError(t, err)
	defer func() { _ = c.Release(ctx) }()
}

func TestRelease_LostLease(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()

	lease, err := locker.Acquire(ctx, 100, 0)
	require.NoError(t, err)

	// Simulate TTL expiry followed by a new holder.
	mr.Del("chatlock:100")
	require.NoError(t, mr.Set("chatlock:100", "someone-else"))

	err = lease.Release(ctx)
	assert.ErrorIs(t, err, ErrLockLost)

	// The successor's lease is untouched.
	got, err := mr.Get("chatlock:100")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRelease_MakesScopeAvailable(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	first, err := locker.Acquire(ctx, 100, 7)
	require.NoError(t, err)
	require.NoError(t, first.Release(ctx))

	second, err := locker.Acquire(ctx, 100, 7)
	require.NoError(t, err)
	assert.NoError(t, second.Release(ctx))
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "chatlock:100", lockKey(100, 0))
	assert.Equal(t, "chatlock:100:55", lockKey(100, 55))
}
