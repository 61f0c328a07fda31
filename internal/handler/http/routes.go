package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/museum-user-api/internal/utils"
	"github.com/MKhiriev/museum-user-api/models"
)

const indexMessage = "API is listening..."

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.index)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/user", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		// routes gated by the credential token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Route("/favourites", h.collectionRoutes(h.favourites()))
			r.Route("/history", h.collectionRoutes(h.history()))
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: indexMessage}, http.StatusOK)
}

func (h *Handler) collectionRoutes(ops collectionOps) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.getCollection(ops))
		r.Put("/{id}", h.addToCollection(ops))
		r.Delete("/{id}", h.removeFromCollection(ops))
	}
}
