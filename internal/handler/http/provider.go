// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/openleaf/models"
)

func (h *Handler) setupProvider(w http.ResponseWriter, r *http.Request) {
	var req models.ProviderSetupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result := h.core.SetupProviderCredentials(r.Context(), req.Password, req.ClientID, req.Secret)
	respond(w, r, result, result)
}

func (h *Handler) clearProvider(w http.ResponseWriter, r *http.Request) {
	result := h.core.ClearProviderCredentials(r.Context())
	respond(w, r, result, result)
}

func (h *Handler) createLinkToken(w http.ResponseWriter, r *http.Request) {
	result := h.core.CreateLinkToken(r.Context())
	respond(w, r, result.Result, result)
}
