package throttle

import "errors"

var (
	// ErrRateLimited is returned when a login attempt budget is exhausted.
	ErrRateLimited = errors.New("too many login attempts")

	// ErrRedisUnavailable wraps failures talking to Redis.
	ErrRedisUnavailable = errors.New("rate limiter backend unavailable")
)
