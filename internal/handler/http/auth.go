// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/utils"
	"github.com/MKhiriev/openleaf/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result := h.core.Register(r.Context(), req.Nickname, req.Password)
	if !result.Success {
		logger.FromRequest(r).Debug().Str("nickname", req.Nickname).Str("error", result.Error).Msg("registration rejected")
		respond(w, r, result, result)
		return
	}

	respondWithStatus(w, r, http.StatusCreated, result)
}

// login opens the session and returns the session token in the
// "Authorization" header. The token expires together with the session.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result := h.core.Login(r.Context(), req.Nickname, req.Password)
	if !result.Success {
		logger.FromRequest(r).Debug().Str("nickname", req.Nickname).Str("error", result.Error).Msg("login rejected")
		respond(w, r, result.Result, result)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", result.Token))
	respond(w, r, result.Result, result)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	result := h.core.Logout(r.Context())

	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Debug().Str("user_id", userID).Msg("session closed")

	respond(w, r, result, result)
}
