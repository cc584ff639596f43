package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
)

const StatsCacheKey = "admin:dashboard"
const StatsCacheDuration = 30 * time.Second

// GET /admin/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Try cache first
	if cached, ok := h.getCachedStats(ctx); ok {
		w.Header().Set("X-Cache", "HIT")
		httpx.OK(w, json.RawMessage(cached))
		return
	}

	stats := h.Cat.Dashboard()
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	h.cacheStats(ctx, statsJSON)

	w.Header().Set("X-Cache", "MISS")
	httpx.OK(w, json.RawMessage(statsJSON))
}

func (h *Handler) getCachedStats(ctx context.Context) ([]byte, bool) {
	if h.RDB == nil {
		return nil, false
	}
	cached, err := h.RDB.Get(ctx, StatsCacheKey).Bytes()
	if err != nil || len(cached) == 0 {
		return nil, false
	}
	return cached, true
}

func (h *Handler) cacheStats(ctx context.Context, statsJSON []byte) {
	if h.RDB == nil {
		return
	}
	if err := h.RDB.SetEx(ctx, StatsCacheKey, statsJSON, h.StatsTTL).Err(); err != nil {
		h.Log.Warn("dashboard cache write failed", zap.Error(err))
	}
}

// ClearStatsCache backs the "cache" maintenance task.
func (h *Handler) ClearStatsCache(ctx context.Context) (string, error) {
	if h.RDB == nil {
		return "no cache configured", nil
	}
	n, err := h.RDB.Del(ctx, StatsCacheKey).Result()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "cache already empty", nil
	}
	return "dashboard cache cleared", nil
}
