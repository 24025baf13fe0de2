// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/openleaf/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Get("/version", h.getVersion)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)

			r.Post("/provider/credentials", h.setupProvider)
			r.Delete("/provider/credentials", h.clearProvider)
			r.Post("/provider/link-token", h.createLinkToken)

			r.Post("/links", h.completeLink)
			r.Get("/links", h.listLinks)
			r.Delete("/links/{linkID}", h.removeLink)

			r.Post("/sync", h.syncAll)

			r.Get("/accounts", h.listAccounts)
			r.Get("/accounts/{accountID}/transactions", h.listTransactions)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithStatus(w, r, http.StatusNotFound, models.Result{Error: http.StatusText(http.StatusNotFound)})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithStatus(w, r, http.StatusMethodNotAllowed, models.Result{Error: http.StatusText(http.StatusMethodNotAllowed)})
	})

	return router
}
