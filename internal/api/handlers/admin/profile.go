package admin

import (
	"net/http"
	"net/url"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/models"
	"github.com/5w1tchy/nexus-admin/internal/profile"
)

type profileResponse struct {
	models.Profile
	AvatarURL string `json:"avatar_url"`
}

type avatarUploadRequest struct {
	ContentType string `json:"content_type"`
}

type avatarRequest struct {
	URL string `json:"url"`
}

func withAvatar(p models.Profile) profileResponse {
	return profileResponse{Profile: p, AvatarURL: profile.AvatarURL(p)}
}

// GET /admin/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, withAvatar(h.Profile.Get()))
}

// PATCH /admin/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in profile.Patch
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	p, err := h.Profile.Update(in)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	h.record("profile.update", p.ID, nil)
	httpx.OK(w, withAvatar(p))
}

// POST /admin/profile/avatar-upload
func (h *Handler) AvatarUpload(w http.ResponseWriter, r *http.Request) {
	var in avatarUploadRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	up, err := h.Profile.PrepareAvatarUpload(r.Context(), h.Uploader, in.ContentType)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	httpx.OK(w, up)
}

// PUT /admin/profile/avatar stores the public URL of an uploaded image.
func (h *Handler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	var in avatarRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	u, err := url.Parse(in.URL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		var c form.Checker
		c.Add("url", "invalid", "url must be an absolute http(s) URL")
		apperr.WriteError(w, r, c.Err("Invalid avatar URL."))
		return
	}
	h.Profile.SetAvatar(u.String())
	p := h.Profile.Get()
	h.record("profile.avatar", p.ID, nil)
	httpx.OK(w, withAvatar(p))
}
