package httpx

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisLimiter is a fixed-window counter shared by every replica that
// points at the same Redis. It fails open: when Redis is unreachable the
// request is allowed and the error is logged.
type redisLimiter struct {
	client  *redis.Client
	logger  *slog.Logger
	prefix  string
	limit   int
	window  time.Duration
	timeout time.Duration
}

// NewRedisLimiter returns a Limiter storing counters under prefix+key.
func NewRedisLimiter(client *redis.Client, logger *slog.Logger, prefix string, config RateLimitConfig) Limiter {
	window := config.Window
	if window <= 0 {
		window = time.Minute
	}
	return &redisLimiter{
		client:  client,
		logger:  logger,
		prefix:  prefix,
		limit:   config.RequestsPerWindow,
		window:  window,
		timeout: 250 * time.Millisecond,
	}
}

// RedisLimiterFactory returns a LimiterFactory that namespaces each route's
// counters as "accounts:ratelimit:{name}:".
func RedisLimiterFactory(client *redis.Client, logger *slog.Logger) LimiterFactory {
	return func(name string, config RateLimitConfig) Limiter {
		return NewRedisLimiter(client, logger, "accounts:ratelimit:"+name+":", config)
	}
}

func (rl *redisLimiter) Allow(ctx context.Context, key string) Decision {
	if rl.limit <= 0 {
		return Decision{Allowed: true}
	}

	ctx, cancel := context.WithTimeout(ctx, rl.timeout)
	defer cancel()

	// EXPIRE NX runs on every hit in the same MULTI as INCR, so a counter
	// never outlives its window even if an earlier expiry was lost.
	redisKey := rl.prefix + key
	var incr *redis.IntCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, rl.window)
		return nil
	})
	if err != nil {
		rl.logError("incr", err)
		return Decision{Allowed: true}
	}
	counter := incr.Val()

	if counter <= int64(rl.limit) {
		return Decision{Allowed: true}
	}

	ttl, err := rl.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl <= 0 {
		ttl = rl.window
	}
	return Decision{Allowed: false, RetryAfter: ttl}
}

func (rl *redisLimiter) logError(op string, err error) {
	if rl.logger == nil {
		return
	}
	rl.logger.Error("redis rate limiter error", "op", op, "err", err)
}
