package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/audit"
)

type auditPage struct {
	Items []audit.Event `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}

// GET /admin/audit
func (h *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := httpx.QueryInt(r, "page", 1)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	size, err := httpx.QueryInt(r, "size", 25)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	page, size = validatePagination(page, size)

	since, err := parseTimeParam(q.Get("since"))
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	until, err := parseTimeParam(q.Get("until"))
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	items, total := h.AuditLog.List(audit.Filter{
		Actor:    q.Get("actor"),
		Action:   q.Get("action"),
		TargetID: q.Get("target_id"),
		Since:    since,
		Until:    until,
		Page:     page,
		Size:     size,
	})
	httpx.OK(w, auditPage{Items: items, Total: total, Page: page, Size: size})
}

func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not RFC 3339", httpx.ErrBadQuery, s)
	}
	return &t, nil
}
