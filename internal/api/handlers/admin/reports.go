package admin

import (
	"net/http"
	"time"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type reportRow struct {
	models.ReportOption
	Generating bool `json:"generating"`
}

// GET /admin/reports
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	opts := h.Reports.Options()
	rows := make([]reportRow, 0, len(opts))
	for _, o := range opts {
		rows = append(rows, reportRow{ReportOption: o, Generating: h.Reports.Generating(o.ID)})
	}
	httpx.OK(w, rows)
}

// POST /admin/reports/{id}/generate blocks for the generation delay.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	if !h.checkRateLimit(w, r, "reports", 10, time.Minute) {
		return
	}
	id := r.PathValue("id")
	out, err := h.Reports.Generate(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	h.record("reports.generate", id, map[string]any{"run_id": out.RunID})
	httpx.OK(w, out)
}
