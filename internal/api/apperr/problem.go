// Package apperr renders every failure the admin API returns as an
// RFC 7807 problem document.
package apperr

import (
	"encoding/json"
	"net/http"
	"strings"
)

const ContentType = "application/problem+json"

// typeBase prefixes the problem type URIs; the slug is derived from the status.
const typeBase = "https://nexus-editorial.dev/problems/"

// FieldError points at one rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"` // required, too_long, out_of_range, invalid, not_found
	Message string `json:"message"`
}

type Problem struct {
	Type        string       `json:"type,omitempty"`
	Title       string       `json:"title"`
	Status      int          `json:"status"`
	Detail      string       `json:"detail,omitempty"`
	Instance    string       `json:"instance,omitempty"`
	RequestID   string       `json:"request_id,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
	Retryable   bool         `json:"retryable,omitempty"`
}

func (p Problem) Error() string {
	if p.Detail != "" {
		return p.Title + ": " + p.Detail
	}
	return p.Title
}

// complete fills what the handler left out from the status and request.
func (p *Problem) complete(r *http.Request) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	if p.Type == "" {
		p.Type = typeBase + slug(http.StatusText(p.Status))
	}
	if r == nil {
		return
	}
	if p.Instance == "" {
		p.Instance = r.URL.Path
	}
	if p.RequestID == "" {
		// RequestID middleware copies the id onto the request header
		p.RequestID = r.Header.Get("X-Request-ID")
	}
}

func slug(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	p.complete(r)
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// WriteStatus writes a problem with no field errors.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	Write(w, r, Problem{Status: status, Title: title, Detail: detail})
}
