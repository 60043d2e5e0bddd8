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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/users", h.getUsers)
		r.Post("/api/v1/users", h.createUser)
		r.Patch("/api/v1/users/{id}", h.updateUser)
		r.Delete("/api/v1/users/{id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
