// Package health serves the liveness probe.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
)

type status struct {
	Status string `json:"status"`
	Redis  string `json:"redis"` // up, down or disabled
}

// Handler reports ok while the process serves. A Redis outage degrades the
// report but not the status code, since every Redis use fails open.
func Handler(rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := status{Status: "ok", Redis: "disabled"}
		if rdb != nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			out.Redis = "up"
			if err := rdb.Ping(ctx).Err(); err != nil {
				out.Status, out.Redis = "degraded", "down"
			}
		}
		httpx.OK(w, out)
	}
}
