package admin

import "net/http"

// Mount registers the admin screens that are not plain entity lists.
func (h *Handler) Mount(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/dashboard", h.Dashboard)

	mux.HandleFunc("POST "+prefix+"/notifications/{id}/read-toggle", h.ToggleNotificationRead)
	mux.HandleFunc("POST "+prefix+"/notifications/{id}/open", h.OpenNotification)
	mux.HandleFunc("POST "+prefix+"/notifications/read-all", h.MarkAllNotificationsRead)

	mux.HandleFunc("GET "+prefix+"/profile", h.GetProfile)
	mux.HandleFunc("PATCH "+prefix+"/profile", h.UpdateProfile)
	mux.HandleFunc("POST "+prefix+"/profile/avatar-upload", h.AvatarUpload)
	mux.HandleFunc("PUT "+prefix+"/profile/avatar", h.SetAvatar)

	mux.HandleFunc("GET "+prefix+"/reports", h.ListReports)
	mux.HandleFunc("POST "+prefix+"/reports/{id}/generate", h.GenerateReport)

	mux.HandleFunc("GET "+prefix+"/settings", h.GetSettings)
	mux.HandleFunc("PUT "+prefix+"/settings/security", h.SaveSecurity)
	mux.HandleFunc("PUT "+prefix+"/settings/uow", h.SaveUnitOfWork)
	mux.HandleFunc("POST "+prefix+"/settings/maintenance/{kind}", h.RunMaintenance)

	mux.HandleFunc("GET "+prefix+"/audit", h.ListAudit)
}
