package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/philly/inkwell/internal/platform/logger"
)

// RequestLogger writes one line per request. Mount it after the
// authenticator so the line carries the caller's id.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Use chi's response writer wrapper to capture status code and bytes written
			wrr := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(wrr, r)

			status := wrr.Status()
			if status == 0 {
				status = http.StatusOK
			}
			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", wrr.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimw.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			}
			if p := PrincipalFrom(r.Context()); p != nil {
				args = append(args, "role", p.Role.String())
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error(r.Context(), "HTTP request completed", args...)
			case status >= http.StatusBadRequest:
				log.Warn(r.Context(), "HTTP request completed", args...)
			default:
				log.Info(r.Context(), "HTTP request completed", args...)
			}
		})
	}
}
