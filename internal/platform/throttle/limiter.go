package throttle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// LoginLimiter tracks failed login attempts per username and client IP.
type LoginLimiter interface {
	// Check returns ErrRateLimited when the username or IP has no attempts left.
	Check(ctx context.Context, username, ip string) error
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, username, ip string) error
	// Reset clears the counters after a successful login.
	Reset(ctx context.Context, username, ip string) error
}

// Options tunes a RedisLimiter.
type Options struct {
	MaxAttempts  int
	Cooldown     time.Duration
	ThrottleByIP bool
}

// OptionsFromConfig converts the rate limit configuration.
func OptionsFromConfig(cfg config.RateLimitConfig) Options {
	return Options{
		MaxAttempts:  cfg.MaxLoginAttempts,
		Cooldown:     time.Duration(cfg.LoginCooldownSeconds) * time.Second,
		ThrottleByIP: cfg.ThrottleByIP,
	}
}

// RedisLimiter is a fixed-window LoginLimiter backed by Redis counters.
// The window starts at the first failure and lasts Options.Cooldown.
type RedisLimiter struct {
	redis redis.UniversalClient
	opts  Options
}

var _ LoginLimiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a limiter using the given client.
func NewRedisLimiter(client redis.UniversalClient, opts Options) *RedisLimiter {
	return &RedisLimiter{redis: client, opts: opts}
}

// Check implements LoginLimiter.
func (l *RedisLimiter) Check(ctx context.Context, username, ip string) error {
	for _, key := range l.keys(username, ip) {
		count, err := l.redis.Get(ctx, key).Int64()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
		if count >= int64(l.opts.MaxAttempts) {
			return ErrRateLimited
		}
	}
	return nil
}

// recordFailureScript increments the counter and starts the window when the
// key has no TTL yet. Later hits leave the TTL alone so the window does not
// slide, and a counter never outlives its window.
var recordFailureScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RecordFailure implements LoginLimiter.
func (l *RedisLimiter) RecordFailure(ctx context.Context, username, ip string) error {
	window := l.opts.Cooldown.Milliseconds()
	for _, key := range l.keys(username, ip) {
		if err := recordFailureScript.Run(ctx, l.redis, []string{key}, window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}
	return nil
}

// Reset implements LoginLimiter.
func (l *RedisLimiter) Reset(ctx context.Context, username, ip string) error {
	if err := l.redis.Del(ctx, l.keys(username, ip)...).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (l *RedisLimiter) keys(username, ip string) []string {
	keys := []string{"blog:login:user:" + strings.ToLower(strings.TrimSpace(username))}
	if l.opts.ThrottleByIP && ip != "" {
		keys = append(keys, "blog:login:ip:"+ip)
	}
	return keys
}

// NoopLimiter never limits. It is used when no Redis URL is configured.
type NoopLimiter struct{}

var _ LoginLimiter = NoopLimiter{}

// Check implements LoginLimiter.
func (NoopLimiter) Check(context.Context, string, string) error { return nil }

// RecordFailure implements LoginLimiter.
func (NoopLimiter) RecordFailure(context.Context, string, string) error { return nil }

// Reset implements LoginLimiter.
func (NoopLimiter) Reset(context.Context, string, string) error { return nil }

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return client, nil
}
