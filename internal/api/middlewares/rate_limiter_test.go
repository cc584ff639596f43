package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mw "github.com/5w1tchy/nexus-admin/internal/api/middlewares"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func hit(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/books", nil)
	req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRedisSlidingWindow(t *testing.T) {
	_, rdb := newRedis(t)
	sw := mw.NewRedisSlidingWindow(rdb, 2, time.Minute, mw.PerIPKey("rl:sw"), zap.NewNop())
	h := sw.Middleware(okHandler)

	for i := 0; i < 2; i++ {
		rec := hit(h, "203.0.113.7")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "sliding-window", rec.Header().Get("X-RateLimit-Policy"))
		assert.Equal(t, strconv.Itoa(1-i), rec.Header().Get("X-RateLimit-Remaining"))
	}

	rec := hit(h, "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	retry, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retry, 1)

	// other clients have their own window
	assert.Equal(t, http.StatusOK, hit(h, "198.51.100.2").Code)
}

func TestRedisTokenBucket(t *testing.T) {
	_, rdb := newRedis(t)
	tb := mw.NewRedisTokenBucket(rdb, 0.01, 3, mw.PerIPKey("rl:tb"), zap.NewNop())
	h := tb.Middleware(okHandler)

	for i := 0; i < 3; i++ {
		rec := hit(h, "203.0.113.7")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}
	rec := hit(h, "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRedisLimitersFailOpen(t *testing.T) {
	mr, rdb := newRedis(t)
	mr.Close()

	sw := mw.NewRedisSlidingWindow(rdb, 1, time.Minute, mw.PerIPKey("rl:sw"), zap.NewNop()).Middleware(okHandler)
	tb := mw.NewRedisTokenBucket(rdb, 1, 1, mw.PerIPKey("rl:tb"), zap.NewNop()).Middleware(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(sw, "203.0.113.7").Code)
		assert.Equal(t, http.StatusOK, hit(tb, "203.0.113.7").Code)
	}
}

func TestPerIPKeyPrefersForwardedFor(t *testing.T) {
	key := mw.PerIPKey("rl")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "rl:192.0.2.1", key(req))

	req.Header.Set("X-Real-IP", "198.51.100.9")
	assert.Equal(t, "rl:198.51.100.9", key(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
	assert.Equal(t, "rl:203.0.113.7", key(req))
}
