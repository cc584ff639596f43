package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/jobs"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/profile"
	"github.com/5w1tchy/nexus-admin/internal/reports"
	"github.com/5w1tchy/nexus-admin/internal/settings"
)

var sentinels = []struct {
	err    error
	status int
	title  string
}{
	{listctl.ErrNotFound, http.StatusNotFound, "Not Found"},
	{reports.ErrUnknownReport, http.StatusNotFound, "Not Found"},
	{settings.ErrUnknownTask, http.StatusNotFound, "Not Found"},
	{listctl.ErrPageSize, http.StatusBadRequest, "Bad Request"},
	{httpx.ErrBadJSON, http.StatusBadRequest, "Bad Request"},
	{httpx.ErrBadQuery, http.StatusBadRequest, "Bad Request"},
	{listctl.ErrPageIndex, http.StatusBadRequest, "Bad Request"},
	{jobs.ErrBusy, http.StatusConflict, "Already running"},
	{profile.ErrUploadsDisabled, http.StatusServiceUnavailable, "Storage not configured"},
}

// FromForm maps a rejected submission to a 422 with its field errors.
func FromForm(err error) (Problem, bool) {
	var fe *form.Errors
	if !errors.As(err, &fe) {
		return Problem{}, false
	}
	p := Problem{
		Title:  "Validation failed",
		Status: http.StatusUnprocessableEntity,
		Detail: fe.Message,
	}
	for _, f := range fe.Fields {
		p.FieldErrors = append(p.FieldErrors, FieldError{Field: f.Field, Code: f.Code, Message: f.Message})
	}
	return p, true
}

// From maps any error the handlers can see. Unknown errors become a bare
// 500 so nothing internal leaks.
func From(err error) Problem {
	if p, ok := FromForm(err); ok {
		return p
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return Problem{Title: s.title, Status: s.status, Detail: err.Error(), Retryable: s.status == http.StatusConflict}
		}
	}
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return Problem{Title: "Payload Too Large", Status: http.StatusRequestEntityTooLarge}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Problem{Title: "Request cancelled", Status: http.StatusRequestTimeout, Retryable: true}
	}
	return Problem{Title: "Internal Server Error", Status: http.StatusInternalServerError}
}

func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	Write(w, r, From(err))
}
