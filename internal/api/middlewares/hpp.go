package middlewares

import (
	"net/http"
	"net/url"
)

// QueryPolicy lists the query parameters the admin handlers understand.
type QueryPolicy struct {
	Allowed map[string]struct{}
}

func NewQueryPolicy(names ...string) QueryPolicy {
	p := QueryPolicy{Allowed: make(map[string]struct{}, len(names))}
	for _, n := range names {
		p.Allowed[n] = struct{}{}
	}
	return p
}

// AdminQueryPolicy covers list views (q, page, size) and the audit filters.
func AdminQueryPolicy() QueryPolicy {
	return NewQueryPolicy("q", "page", "size", "action", "actor", "target_id", "since", "until")
}

// HPP guards against parameter pollution: unknown query parameters are
// dropped and repeated ones keep their first value. Request bodies are JSON
// and decoded strictly, so only the query string is touched.
func HPP(p QueryPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" {
				r.URL.RawQuery = p.clean(r.URL.Query()).Encode()
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (p QueryPolicy) clean(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for k, v := range in {
		if _, ok := p.Allowed[k]; !ok || len(v) == 0 {
			continue
		}
		out.Set(k, v[0])
	}
	return out
}
