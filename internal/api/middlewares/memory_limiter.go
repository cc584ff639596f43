package middlewares

import (
	"math"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore keeps one token bucket per key and forgets idle ones.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	r        rate.Limit
	b        int
	idle     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newLimiterStore(r rate.Limit, b int, idle time.Duration) *limiterStore {
	s := &limiterStore{
		limiters: make(map[string]*keyedLimiter),
		r:        r,
		b:        b,
		idle:     idle,
		stopCh:   make(chan struct{}),
	}
	go s.cleanup()
	return s
}

func (s *limiterStore) cleanup() {
	ticker := time.NewTicker(s.idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			for k, l := range s.limiters {
				if time.Since(l.lastSeen) > s.idle {
					delete(s.limiters, k)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[key]
	if !ok {
		l = &keyedLimiter{limiter: rate.NewLimiter(s.r, s.b)}
		s.limiters[key] = l
	}
	l.lastSeen = time.Now()
	return l.limiter
}

// reserve takes a token if one is available, otherwise reports the wait.
func (s *limiterStore) reserve(key string) (ok bool, remaining int, retry time.Duration) {
	lim := s.get(key)
	now := time.Now()
	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, 0, time.Second
	}
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return false, 0, d
	}
	return true, int(math.Max(0, math.Floor(lim.TokensAt(now)))), 0
}

func (s *limiterStore) stop() { s.stopOnce.Do(func() { close(s.stopCh) }) }

// MemoryTokenBucket is the per-process stand-in for RedisTokenBucket.
type MemoryTokenBucket struct {
	store *limiterStore
	keyFn KeyFunc
	burst int
}

func NewMemoryTokenBucket(ratePerSecond float64, burst int, keyFn KeyFunc) *MemoryTokenBucket {
	return &MemoryTokenBucket{
		store: newLimiterStore(rate.Limit(ratePerSecond), burst, 10*time.Minute),
		keyFn: keyFn,
		burst: burst,
	}
}

func (m *MemoryTokenBucket) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, remaining, retry := m.store.reserve(m.keyFn(r))
		d := decision{policy: "token-bucket", limit: m.burst, remaining: remaining, allowed: ok, retry: retry}
		d.headers(w)
		if !d.allowed {
			tooMany(w, d.retry)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Stop ends the cleanup goroutine.
func (m *MemoryTokenBucket) Stop() { m.store.stop() }
