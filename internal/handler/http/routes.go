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

	router.Route("/api/notes", func(r chi.Router) {
		r.Post("/", h.createNote)
		r.Get("/", h.listNotes)
		r.Get("/trash", h.listTrash)
		r.Get("/events", h.streamEvents)
		r.Post("/undo", h.undoLastAction)

		r.Get("/{id}", h.getNote)
		r.Delete("/{id}", h.softDeleteNote)
		r.Post("/{id}/restore", h.restoreNote)
		r.Delete("/{id}/purge", h.purgeNote)
	})

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
