package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/museum-user-api/internal/logger"
)

// withLogging writes one access log line per request. The matched route
// pattern is logged next to the raw path so item ids can be grouped.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", routePattern(r)).
			Int("status", lw.statusOrOK()).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

// routePattern returns the chi pattern that served r, or unmatchedRoute.
// It is only meaningful after the router has run.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return unmatchedRoute
}
