package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, opts Options) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client, opts), mr
}

func TestRedisLimiter_BlocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(t, Options{MaxAttempts: 3, Cooldown: time.Minute})

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Check(ctx, "alice123", ""))
		require.NoError(t, l.RecordFailure(ctx, "alice123", ""))
	}

	assert.ErrorIs(t, l.Check(ctx, "alice123", ""), ErrRateLimited)
	assert.NoError(t, l.Check(ctx, "bob", ""), "other usernames are unaffected")
}

func TestRedisLimiter_UsernameIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(t, Options{MaxAttempts: 1, Cooldown: time.Minute})

	require.NoError(t, l.RecordFailure(ctx, "Alice123", ""))
	assert.ErrorIs(t, l.Check(ctx, " alice123 ", ""), ErrRateLimited)
}

func TestRedisLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, Options{MaxAttempts: 1, Cooldown: time.Minute})

	require.NoError(t, l.RecordFailure(ctx, "alice123", ""))
	require.ErrorIs(t, l.Check(ctx, "alice123", ""), ErrRateLimited)

	// Later failures must not extend the window.
	mr.FastForward(30 * time.Second)
	require.NoError(t, l.RecordFailure(ctx, "alice123", ""))
	mr.FastForward(31 * time.Second)

	assert.NoError(t, l.Check(ctx, "alice123", ""))
}

func TestRedisLimiter_CounterWithoutTTLGetsWindow(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, Options{MaxAttempts: 5, Cooldown: time.Minute})

	// A counter left without a TTL must not lock the user out forever.
	require.NoError(t, mr.Set("blog:login:user:alice123", "4"))

	require.NoError(t, l.RecordFailure(ctx, "alice123", ""))
	assert.Equal(t, time.Minute, mr.TTL("blog:login:user:alice123"))
	require.ErrorIs(t, l.Check(ctx, "alice123", ""), ErrRateLimited)

	mr.FastForward(61 * time.Second)
	assert.NoError(t, l.Check(ctx, "alice123", ""))
}

func TestRedisLimiter_ThrottleByIP(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(t, Options{MaxAttempts: 2, Cooldown: time.Minute, ThrottleByIP: true})

	require.NoError(t, l.RecordFailure(ctx, "alice123", "10.0.0.1"))
	require.NoError(t, l.RecordFailure(ctx, "bob", "10.0.0.1"))

	assert.ErrorIs(t, l.Check(ctx, "carol", "10.0.0.1"), ErrRateLimited)
	assert.NoError(t, l.Check(ctx, "carol", "10.0.0.2"))
}

func TestRedisLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, Options{MaxAttempts: 1, Cooldown: time.Minute, ThrottleByIP: true})

	require.NoError(t, l.RecordFailure(ctx, "alice123", "10.0.0.1"))
	require.NoError(t, l.Reset(ctx, "alice123", "10.0.0.1"))

	assert.NoError(t, l.Check(ctx, "alice123", "10.0.0.1"))
	assert.False(t, mr.Exists("blog:login:user:alice123"))
}

func TestRedisLimiter_RedisDown(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, Options{MaxAttempts: 1, Cooldown: time.Minute})
	mr.Close()

	assert.ErrorIs(t, l.Check(ctx, "alice123", ""), ErrRedisUnavailable)
	assert.ErrorIs(t, l.RecordFailure(ctx, "alice123", ""), ErrRedisUnavailable)
}

func TestNoopLimiter(t *testing.T) {
	ctx := context.Background()
	var l LoginLimiter = NoopLimiter{}
	for i := 0; i < 10; i++ {
		require.NoError(t, l.RecordFailure(ctx, "alice123", "10.0.0.1"))
	}
	assert.NoError(t, l.Check(ctx, "alice123", "10.0.0.1"))
	assert.NoError(t, l.Reset(ctx, "alice123", "10.0.0.1"))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewClient(context.Background(), "not a url")
	assert.Error(t, err)
}
