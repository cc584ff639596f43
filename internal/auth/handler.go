// Package auth is the admin login mock: it checks one configured account
// and tells the client where to go. No token or session is issued.
package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/security/password"
)

const DashboardPath = "/dashboard"

type Handler struct {
	hasher password.Hasher
	log    *zap.Logger

	mu    sync.RWMutex
	creds Credentials
}

func New(creds Credentials, hasher password.Hasher, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{hasher: hasher, log: logger, creds: creds}
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	var c form.Checker
	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.Add("username", "required", "username is required")
	}
	pwd := req.Password
	if errors.Is(password.Validate(pwd), password.ErrTooShort) {
		c.Add("password", "too_short", "password must be at least 6 characters")
	}
	if err := c.Err("Please check your credentials."); err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	h.mu.RLock()
	creds := h.creds
	h.mu.RUnlock()

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(creds.Username)) == 1
	ok, needsRehash, err := h.hasher.Verify(pwd, creds.PasswordHash)
	if err != nil {
		h.log.Error("admin password hash unreadable", zap.Error(err))
	}
	if !userOK || !ok {
		apperr.WriteStatus(w, r, http.StatusUnauthorized, "Unauthorized", "invalid_credentials")
		return
	}
	if needsRehash {
		h.rehash(pwd)
	}

	httpx.OK(w, LoginResponse{Username: creds.Username, Redirect: DashboardPath})
}

// rehash upgrades the in-memory hash to the current params. The configured
// value is left as is; run hash-password to update it.
func (h *Handler) rehash(pwd string) {
	phc, err := h.hasher.Hash(pwd)
	if err != nil {
		h.log.Warn("admin password rehash failed", zap.Error(err))
		return
	}
	h.mu.Lock()
	h.creds.PasswordHash = phc
	h.mu.Unlock()
	h.log.Info("admin password hash upgraded to current argon2id params")
}
