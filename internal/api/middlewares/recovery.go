package middlewares

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
)

func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					rid := GetRequestID(r)
					if rid == "" {
						rid = "unknown"
					}
					logger.Error("panic recovered",
						zap.String("request_id", rid),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("panic", err),
						zap.ByteString("stack", debug.Stack()),
					)
					// Don't expose internal errors to client
					apperr.WriteStatus(w, r, http.StatusInternalServerError, "Internal Server Error", "")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
