// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/openleaf/internal/app"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/service"
	"github.com/MKhiriev/openleaf/internal/utils"
	"github.com/MKhiriev/openleaf/models"
)

// auth is an HTTP middleware that enforces session token authentication.
//
// It extracts the bearer token from the "Authorization" header, checks it
// via [client.Core.Authenticate] and on success stores the user id in the
// request context under [utils.UserIDCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, malformed or signed by another process.
//   - The session the token was issued for is closed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, r, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(errors.Join(ErrInvalidAuthorizationHeader, err)).Send()
			unauthorized(w, r, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		userID, err := h.core.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("request rejected")
			if errors.Is(err, service.ErrNotLoggedIn) {
				unauthorized(w, r, app.MsgNotLoggedIn)
				return
			}
			unauthorized(w, r, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	respondWithStatus(w, r, http.StatusUnauthorized, models.Result{Error: message})
}
