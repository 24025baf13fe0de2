// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/openleaf/internal/app"
	"github.com/MKhiriev/openleaf/models"
)

var messageStatusMap = map[string]int{
	app.MsgInvalidDataProvided:     http.StatusBadRequest,
	app.MsgWrongPassword:           http.StatusUnauthorized,
	app.MsgUserNotFound:            http.StatusUnauthorized,
	app.MsgCryptoFailure:           http.StatusUnauthorized,
	app.MsgNotLoggedIn:             http.StatusUnauthorized,
	app.MsgTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	app.MsgNicknameAlreadyExists:   http.StatusConflict,
	app.MsgSyncInProgress:          http.StatusConflict,
	app.MsgProviderNotConfigured:   http.StatusPreconditionFailed,
	app.MsgLinkNotFound:            http.StatusNotFound,
	app.MsgAccountNotFound:         http.StatusNotFound,
	app.MsgLinkLocked:              http.StatusLocked,

	// partial sync results are still a complete answer
	app.MsgSomeLinksFailed: http.StatusOK,

	app.MsgBackfillTimeout:         http.StatusGatewayTimeout,
	app.MsgSyncRetryExhausted:      http.StatusServiceUnavailable,
	app.MsgProviderUnavailable:     http.StatusBadGateway,
	app.MsgProviderRejected:        http.StatusBadGateway,
	app.MsgProviderRemoveFailed:    http.StatusBadGateway,
	app.MsgItemNotFound:            http.StatusBadGateway,
	app.MsgInvalidProviderResponse: http.StatusBadGateway,

	app.MsgStorageLocked: http.StatusServiceUnavailable,
	app.MsgStorageError:  http.StatusInternalServerError,
	app.MsgInternalError: http.StatusInternalServerError,
}

// statusFromResult maps an unsuccessful result onto an HTTP status.
// Messages outside the map are display messages of the aggregation provider.
func statusFromResult(result models.Result) int {
	if result.Success {
		return http.StatusOK
	}
	if status, ok := messageStatusMap[result.Error]; ok {
		return status
	}
	return http.StatusBadGateway
}
