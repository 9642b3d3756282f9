package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)

		r.Get("/api/notes/{address}", h.getNotes)
		r.Post("/api/authors/{address}", h.trackAuthor)
		r.Get("/api/version/", h.getVersion)
	})

	router.Method("GET", "/metrics", h.metrics.Handler())

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
