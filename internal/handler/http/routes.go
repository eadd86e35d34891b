// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with all middleware and routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.hasher != nil {
		router.Use(h.withHashing)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.hello)
		r.Get("/version", h.getServerVersion)
		r.Post("/create-user", h.createUser)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/get-user", h.getUser)
		r.Post("/add-note", h.addNote)
		r.Put("/update-note/{noteId}", h.updateNote)
		r.Get("/all-notes", h.getAllNotes)
		r.Delete("/delete-note/{noteId}", h.deleteNote)
		r.Put("/toggle-note-pinned/{noteId}", h.toggleNotePinned)
		r.Get("/search-notes", h.searchNotes)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
