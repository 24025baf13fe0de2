// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// syncAll runs one sync pass over every link. A partial failure answers
// 200 with per-link errors in the report.
func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	result := h.core.SyncAllLinks(r.Context())
	respond(w, r, result.Result, result)
}
