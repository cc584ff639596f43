package admin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/models"
	"github.com/5w1tchy/nexus-admin/internal/settings"
)

const (
	TaskCache = "cache"
	TaskLogs  = "logs"
)

type maintenanceRow struct {
	Kind    string `json:"kind"`
	Running bool   `json:"running"`
}

type settingsResponse struct {
	models.Settings
	Maintenance []maintenanceRow `json:"maintenance"`
}

// RegisterMaintenance wires the two maintenance buttons: clearing the
// dashboard cache and pruning the audit log down to keep entries.
func (h *Handler) RegisterMaintenance(cacheDelay, logsDelay time.Duration, keep int) {
	h.Maintenance.Register(TaskCache, cacheDelay, h.ClearStatsCache)
	h.Maintenance.Register(TaskLogs, logsDelay, func(context.Context) (string, error) {
		n := h.AuditLog.Prune(keep)
		return fmt.Sprintf("%d audit entries archived", n), nil
	})
}

// GET /admin/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	kinds := h.Maintenance.Kinds()
	rows := make([]maintenanceRow, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, maintenanceRow{Kind: k, Running: h.Maintenance.Running(k)})
	}
	httpx.OK(w, settingsResponse{Settings: h.Settings.Get(), Maintenance: rows})
}

// PUT /admin/settings/security
func (h *Handler) SaveSecurity(w http.ResponseWriter, r *http.Request) {
	var in settings.SecurityInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	saved, err := h.Settings.SaveSecurity(r.Context(), in)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	h.record("settings.security", "", nil)
	httpx.OK(w, saved)
}

// PUT /admin/settings/uow
func (h *Handler) SaveUnitOfWork(w http.ResponseWriter, r *http.Request) {
	var in settings.UnitOfWorkInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	saved, err := h.Settings.SaveUnitOfWork(r.Context(), in)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	h.record("settings.uow", "", nil)
	httpx.OK(w, saved)
}

// POST /admin/settings/maintenance/{kind}
func (h *Handler) RunMaintenance(w http.ResponseWriter, r *http.Request) {
	if !h.checkRateLimit(w, r, "maintenance", 5, time.Minute) {
		return
	}
	kind := r.PathValue("kind")
	res, err := h.Maintenance.Run(r.Context(), kind)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	h.record("maintenance."+kind, "", map[string]any{"summary": res.Summary})
	httpx.OK(w, res)
}
