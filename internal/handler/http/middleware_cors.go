package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS applies the configured origin allow-list. Only the methods and
// headers the API uses are allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
