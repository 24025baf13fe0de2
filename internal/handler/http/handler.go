// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/openleaf/internal/app"
	"github.com/MKhiriev/openleaf/internal/client"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/utils"
	"github.com/MKhiriev/openleaf/models"
)

type Handler struct {
	core client.Core

	logger *logger.Logger
}

func NewHandler(core client.Core, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		core:   core,
		logger: logger,
	}
}

// decodeJSON decodes the request body into dst. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Result{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return false
	}
	return true
}

// respond writes body with the status derived from result.
func respond(w http.ResponseWriter, r *http.Request, result models.Result, body any) {
	respondWithStatus(w, r, statusFromResult(result), body)
}

func respondWithStatus(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "http.respondWithStatus").Msg("failed to write response")
	}
}
