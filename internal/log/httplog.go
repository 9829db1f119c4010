package log

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// AccessLog logs one line per request and tags the response with a request ID.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		m := httpsnoop.CaptureMetrics(next, w, r)

		fields := []any{
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"duration_ms", m.Duration.Milliseconds(),
			"size", m.Written,
			"remote_addr", r.RemoteAddr,
		}
		if m.Code >= http.StatusInternalServerError {
			log.Errorw("http request", fields...)
			return
		}
		log.Infow("http request", fields...)
	})
}
