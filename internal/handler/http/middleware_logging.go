package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// withLogging writes one access log line per request. Poll requests also
// log the backend path and callback token, which tie the line to the
// client's pending call.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("method", r.Method).
			Str("uri", r.URL.Path).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if r.Method == http.MethodGet {
			query := r.URL.Query()
			event = event.Str("path", query.Get(queryPath)).Str("callback", query.Get(queryCallback))
		}
		event.Send()
	})
}
