package middlewares

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// KeyFunc names the bucket a request is counted in.
type KeyFunc func(r *http.Request) string

// PerIPKey buckets callers by client IP.
func PerIPKey(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientIP(r)
		if ip == "" {
			ip = "unknown"
		}
		return prefix + ":" + ip
	}
}

// clientIP trusts the first X-Forwarded-For hop, then X-Real-IP. The admin
// runs behind a single reverse proxy.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// decision is one limiter verdict.
type decision struct {
	policy    string
	limit     int
	remaining int
	allowed   bool
	retry     time.Duration
}

func (d decision) headers(w http.ResponseWriter) {
	h := w.Header()
	h.Set("X-RateLimit-Policy", d.policy)
	h.Set("X-RateLimit-Limit", strconv.Itoa(d.limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, d.remaining)))
}

func tooMany(w http.ResponseWriter, retry time.Duration) {
	sec := int64((retry + time.Second - 1) / time.Second)
	if sec < 1 {
		sec = 1
	}
	w.Header().Set("Retry-After", strconv.FormatInt(sec, 10))
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
}

// limitMiddleware runs check for each request. A check error lets the
// request through.
func limitMiddleware(name string, logger *zap.Logger, keyFn KeyFunc, check func(ctx context.Context, key string) (decision, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			d, err := check(r.Context(), key)
			if err != nil {
				logger.Warn(name+": redis error, allowing request", zap.String("key", key), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			d.headers(w)
			if !d.allowed {
				logger.Info(name+": blocked", zap.String("key", key), zap.Duration("retry_after", d.retry))
				tooMany(w, d.retry)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var errBadReply = errors.New("token bucket: unexpected script reply")

// refillScript keeps {level, at} in a hash. It returns
// {allowed, whole tokens left, ms until the next token}.
const refillScript = `
local rate, capacity = tonumber(ARGV[1]), tonumber(ARGV[2])
local clock = redis.call('TIME')
local now = tonumber(clock[1]) * 1000 + math.floor(tonumber(clock[2]) / 1000)

local state = redis.call('HMGET', KEYS[1], 'level', 'at')
local level = tonumber(state[1]) or capacity
local at = tonumber(state[2]) or now
if now > at then
  level = math.min(capacity, level + (now - at) * rate / 1000)
end

local ok, wait = 0, 0
if level >= 1 then
  level = level - 1
  ok = 1
else
  wait = math.ceil((1 - level) * 1000 / rate)
end

redis.call('HSET', KEYS[1], 'level', level, 'at', now)
redis.call('PEXPIRE', KEYS[1], math.ceil(capacity * 1000 / rate))
return {ok, math.floor(level), wait}
`

// RedisTokenBucket shares one bucket per key across every API instance.
type RedisTokenBucket struct {
	rdb    *redis.Client
	script *redis.Script
	rate   float64
	burst  int
	keyFn  KeyFunc
	logger *zap.Logger
}

func NewRedisTokenBucket(rdb *redis.Client, ratePerSecond float64, burst int, keyFn KeyFunc, logger *zap.Logger) *RedisTokenBucket {
	return &RedisTokenBucket{
		rdb:    rdb,
		script: redis.NewScript(refillScript),
		rate:   ratePerSecond,
		burst:  burst,
		keyFn:  keyFn,
		logger: logger,
	}
}

func (tb *RedisTokenBucket) check(ctx context.Context, key string) (decision, error) {
	res, err := tb.script.Run(ctx, tb.rdb, []string{key},
		strconv.FormatFloat(tb.rate, 'f', -1, 64), tb.burst).Int64Slice()
	if err != nil {
		return decision{}, err
	}
	if len(res) != 3 {
		return decision{}, errBadReply
	}
	return decision{
		policy:    "token-bucket",
		limit:     tb.burst,
		remaining: int(res[1]),
		allowed:   res[0] == 1,
		retry:     time.Duration(res[2]) * time.Millisecond,
	}, nil
}

func (tb *RedisTokenBucket) Middleware(next http.Handler) http.Handler {
	return limitMiddleware("token bucket", tb.logger, tb.keyFn, tb.check)(next)
}

// RedisSlidingWindow counts requests in the trailing window with a ZSET.
type RedisSlidingWindow struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	keyFn  KeyFunc
	logger *zap.Logger
	now    func() time.Time
}

func NewRedisSlidingWindow(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc, logger *zap.Logger) *RedisSlidingWindow {
	return &RedisSlidingWindow{rdb: rdb, limit: limit, window: window, keyFn: keyFn, logger: logger, now: time.Now}
}

func (sw *RedisSlidingWindow) check(ctx context.Context, key string) (decision, error) {
	now := sw.now().UnixMilli()
	cutoff := now - sw.window.Milliseconds()

	pipe := sw.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: uuid.NewString()})
	count := pipe.ZCard(ctx, key)
	oldest := pipe.ZRangeWithScores(ctx, key, 0, 0)
	pipe.PExpire(ctx, key, sw.window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return decision{}, err
	}

	n := int(count.Val())
	d := decision{policy: "sliding-window", limit: sw.limit, remaining: sw.limit - n, allowed: n <= sw.limit}
	if !d.allowed {
		d.retry = time.Second
		if z := oldest.Val(); len(z) == 1 {
			if ms := int64(z[0].Score) - cutoff; ms > 1000 {
				d.retry = time.Duration(ms) * time.Millisecond
			}
		}
	}
	return d, nil
}

func (sw *RedisSlidingWindow) Middleware(next http.Handler) http.Handler {
	return limitMiddleware("sliding window", sw.logger, sw.keyFn, sw.check)(next)
}
