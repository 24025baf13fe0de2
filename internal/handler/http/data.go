// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	result := h.core.ListAccounts(r.Context())
	respond(w, r, result.Result, result)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	result := h.core.ListTransactions(r.Context(), chi.URLParam(r, "accountID"))
	respond(w, r, result.Result, result)
}
