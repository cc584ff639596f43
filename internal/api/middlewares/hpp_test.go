package middlewares_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	mw "github.com/5w1tchy/nexus-admin/internal/api/middlewares"
)

func TestHPPQuery(t *testing.T) {
	var got url.Values
	h := mw.HPP(mw.AdminQueryPolicy())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/books?q=dune&q=asimov&page=2&debug=1", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"dune"}, got["q"])
	assert.Equal(t, "2", got.Get("page"))
	assert.NotContains(t, got, "debug")
}

func TestHPPAuditFilters(t *testing.T) {
	var raw string
	h := mw.HPP(mw.AdminQueryPolicy())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.RawQuery
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/audit?action=books.&action=genres.&since=2025-06-01T00:00:00Z", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "action=books.&since=2025-06-01T00%3A00%3A00Z", raw)
}

func TestHPPLeavesBodies(t *testing.T) {
	var read string
	h := mw.HPP(mw.NewQueryPolicy())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		read = string(b)
	}))

	req := httptest.NewRequest(http.MethodPost, "/admin/genres?x=1", strings.NewReader(`{"name":"Ensayo"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"name":"Ensayo"}`, read)
}
