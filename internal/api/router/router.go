package router

import (
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/5w1tchy/nexus-admin/internal/api/handlers/admin"
	"github.com/5w1tchy/nexus-admin/internal/api/handlers/entities"
	"github.com/5w1tchy/nexus-admin/internal/api/handlers/health"
	"github.com/5w1tchy/nexus-admin/internal/api/handlers/ui"
	mw "github.com/5w1tchy/nexus-admin/internal/api/middlewares"
	"github.com/5w1tchy/nexus-admin/internal/auth"
	"github.com/5w1tchy/nexus-admin/internal/catalog"
	"github.com/5w1tchy/nexus-admin/internal/config"
	"github.com/5w1tchy/nexus-admin/internal/metrics"
)

const AdminPrefix = "/admin"

type Deps struct {
	Cfg     config.Config
	Log     *zap.Logger
	RDB     *redis.Client // nil switches every limiter to memory
	Catalog *catalog.Catalog
	Admin   *admin.Handler
	Auth    *auth.Handler
	UI      *ui.Handler
	Audit   entities.Auditor
	Metrics *metrics.Collector
}

// Router builds the full handler. The returned stop func releases the
// in-memory limiters' cleanup goroutines.
func Router(d Deps) (http.Handler, func()) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	mux := http.NewServeMux()
	var stops []func()

	mux.Handle("GET /healthz", health.Handler(d.RDB))
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}

	// Login gets its own, stricter limiter on top of the global ones.
	var login mw.LoginLimiter
	if d.RDB != nil {
		login = mw.NewRedisLoginLimiter(d.RDB, d.Cfg.LoginMaxAttempts, d.Cfg.LoginWindow)
	} else {
		ml := mw.NewMemoryLoginLimiter(d.Cfg.LoginMaxAttempts, d.Cfg.LoginWindow)
		stops = append(stops, ml.Stop)
		login = ml
	}
	mux.Handle("POST /auth/login", mw.LoginRateLimit(login, d.Log)(http.HandlerFunc(d.Auth.Login)))

	d.UI.Mount(mux)

	deps := entities.Deps{Actor: d.Admin.Actor, Audit: d.Audit}
	if d.Metrics != nil {
		deps.Forms = d.Metrics
	}
	entities.Mount(mux, AdminPrefix, d.Catalog, deps)
	d.Admin.Mount(mux, AdminPrefix)

	var inner http.Handler = mux
	if d.Metrics != nil {
		inner = mw.Metrics(d.Metrics)(mux)
	}

	chain := []mw.Middleware{
		mw.RequestID,
		mw.Recovery(d.Log),
		mw.AccessLog(d.Log),
		mw.Cors(d.Cfg.CORSOrigins, d.Log),
		mw.SecurityHeaders(d.Cfg.StrictSecurity),
		mw.BodySizeLimit(d.Cfg.MaxBodyBytes),
		mw.HPP(mw.AdminQueryPolicy()),
	}
	if d.RDB != nil {
		tb := mw.NewRedisTokenBucket(d.RDB, d.Cfg.RateLimitRPS, d.Cfg.RateLimitBurst, mw.PerIPKey("tb"), d.Log)
		sw := mw.NewRedisSlidingWindow(d.RDB, d.Cfg.WindowLimit, d.Cfg.Window, mw.PerIPKey("sw"), d.Log)
		chain = append(chain, tb.Middleware, sw.Middleware)
	} else {
		tb := mw.NewMemoryTokenBucket(d.Cfg.RateLimitRPS, d.Cfg.RateLimitBurst, mw.PerIPKey("tb"))
		stops = append(stops, tb.Stop)
		chain = append(chain, tb.Middleware)
	}
	chain = append(chain, mw.Compression)

	stop := func() {
		for _, s := range stops {
			s()
		}
	}
	return mw.Chain(inner, chain...), stop
}
