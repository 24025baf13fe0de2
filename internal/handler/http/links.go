// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/openleaf/models"
)

// completeLink answers 201 once the link is stored. The outcome of its
// first sync is reported in the body and does not change the status.
func (h *Handler) completeLink(w http.ResponseWriter, r *http.Request) {
	var req models.CompleteLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result := h.core.CompletePublicTokenExchange(r.Context(), req.Password, req.PublicToken, req.FriendlyName)
	if result.Success {
		respondWithStatus(w, r, http.StatusCreated, result)
		return
	}
	respond(w, r, result.Result, result)
}

func (h *Handler) listLinks(w http.ResponseWriter, r *http.Request) {
	result := h.core.ListLinks(r.Context())
	respond(w, r, result.Result, result)
}

func (h *Handler) removeLink(w http.ResponseWriter, r *http.Request) {
	result := h.core.RemoveLink(r.Context(), chi.URLParam(r, "linkID"))
	respond(w, r, result, result)
}
