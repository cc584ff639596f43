package admin

import (
	"net/http"
	"strconv"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
)

// POST /admin/notifications/{id}/read-toggle
func (h *Handler) ToggleNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w, r)
		return
	}
	n, err := h.Cat.ToggleRead(id)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	h.record("notifications.read_toggle", strconv.FormatInt(id, 10), map[string]any{"read": n.Read})
	httpx.OK(w, map[string]any{"notification": n, "unread": h.Cat.UnreadCount()})
}

// POST /admin/notifications/{id}/open marks the notification read and hands
// back where the panel should navigate.
func (h *Handler) OpenNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w, r)
		return
	}
	n, err := h.Cat.OpenNotification(id)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	httpx.OK(w, map[string]any{"notification": n, "redirect": n.Link, "unread": h.Cat.UnreadCount()})
}

// POST /admin/notifications/read-all
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	changed := h.Cat.MarkAllRead()
	if changed > 0 {
		h.record("notifications.read_all", "", map[string]any{"changed": changed})
	}
	httpx.OK(w, map[string]int{"changed": changed, "unread": h.Cat.UnreadCount()})
}
