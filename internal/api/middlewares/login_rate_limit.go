package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// LoginLimiter counts login attempts per client.
type LoginLimiter interface {
	Allow(ctx context.Context, ip string) (ok bool, retry time.Duration, err error)
}

// RedisLoginLimiter allows max attempts per fixed window (INCR + EXPIRE).
type RedisLoginLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewRedisLoginLimiter(rdb *redis.Client, max int, window time.Duration) *RedisLoginLimiter {
	return &RedisLoginLimiter{rdb: rdb, max: max, window: window}
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, ip string) (bool, time.Duration, error) {
	key := "rl:login:" + ip
	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, 0, err
	}
	if n == 1 {
		_ = l.rdb.Expire(ctx, key, l.window).Err()
	}
	if n > int64(l.max) {
		ttl, err := l.rdb.TTL(ctx, key).Result()
		if err != nil || ttl <= 0 {
			ttl = l.window
		}
		return false, ttl, nil
	}
	return true, 0, nil
}

// MemoryLoginLimiter refills max attempts evenly over window.
type MemoryLoginLimiter struct {
	store *limiterStore
}

func NewMemoryLoginLimiter(max int, window time.Duration) *MemoryLoginLimiter {
	every := window / time.Duration(max)
	return &MemoryLoginLimiter{store: newLimiterStore(rate.Every(every), max, 2*window)}
}

func (l *MemoryLoginLimiter) Allow(_ context.Context, ip string) (bool, time.Duration, error) {
	ok, _, retry := l.store.reserve(ip)
	return ok, retry, nil
}

func (l *MemoryLoginLimiter) Stop() { l.store.stop() }

// LoginRateLimit fails open when the limiter errors or the IP is unknown.
func LoginRateLimit(l LoginLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if ip == "" {
				next.ServeHTTP(w, r)
				return
			}
			ok, retry, err := l.Allow(r.Context(), ip)
			if err != nil {
				logger.Warn("login limiter error, allowing request", zap.Error(err))
			}
			if !ok {
				logger.Info("login rate limited", zap.String("ip", ip))
				tooMany(w, retry)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
