package admin

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
)

// ===== Request Helpers =====

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

func badID(w http.ResponseWriter, r *http.Request) {
	apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid id")
}

func (h *Handler) record(action, targetID string, meta map[string]any) {
	if h.Recorder != nil {
		h.Recorder.Record(h.Actor, action, targetID, meta)
	}
}

// ===== Rate Limiting =====

func rateKey(prefix, actor string) string {
	return "admin:rl:" + prefix + ":" + actor
}

func (h *Handler) allowAction(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := h.RDB.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return int(incr.Val()) <= limit, nil
}

// checkRateLimit caps slow actions per actor. Without Redis, or when Redis
// errors, the action goes through.
func (h *Handler) checkRateLimit(w http.ResponseWriter, r *http.Request, action string, limit int, window time.Duration) bool {
	if h.RDB == nil {
		return true
	}
	ok, err := h.allowAction(r.Context(), rateKey(action, h.Actor), limit, window)
	if err != nil {
		h.Log.Warn("admin rate limit unavailable", zap.String("action", action), zap.Error(err))
		return true
	}
	if !ok {
		w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
		apperr.WriteStatus(w, r, http.StatusTooManyRequests, "Too Many Requests", "rate_limited")
		return false
	}
	return true
}

// ===== Validation =====

func validatePagination(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 25
	}
	return page, size
}
