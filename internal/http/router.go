package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the exposed endpoints.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/query", h.QueryHandler)
	r.Get("/query/last", h.LastQueryHandler)
	r.Post("/document", h.DocumentHandler)
	r.Get("/healthz", h.HealthHandler)

	return r
}
