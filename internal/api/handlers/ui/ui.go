// Package ui exposes the shell's layout holders: sidebar and theme.
package ui

import (
	"net/http"
	"strings"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/uistate"
)

type Handler struct {
	Sidebar *uistate.Sidebar
	Theme   *uistate.Theme
}

func New(sidebar *uistate.Sidebar, theme *uistate.Theme) *Handler {
	return &Handler{Sidebar: sidebar, Theme: theme}
}

func (h *Handler) Mount(mux *http.ServeMux) {
	mux.HandleFunc("GET /ui/state", h.State)
	mux.HandleFunc("POST /ui/sidebar/toggle", h.ToggleSidebar)
	mux.HandleFunc("POST /ui/sidebar/sections/{label}/toggle", h.ToggleSection)
	mux.HandleFunc("POST /ui/theme/toggle", h.ToggleTheme)
}

func (h *Handler) snapshot(w http.ResponseWriter) {
	httpx.OK(w, uistate.Snap(h.Sidebar, h.Theme))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) { h.snapshot(w) }

func (h *Handler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.Sidebar.Toggle()
	h.snapshot(w)
}

func (h *Handler) ToggleSection(w http.ResponseWriter, r *http.Request) {
	label := strings.TrimSpace(r.PathValue("label"))
	if label == "" {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "section label is required")
		return
	}
	h.Sidebar.ToggleSection(label)
	h.snapshot(w)
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.Theme.Toggle()
	h.snapshot(w)
}
