// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/app"
	"github.com/MKhiriev/openleaf/internal/crypto"
	"github.com/MKhiriev/openleaf/internal/service"
	"github.com/MKhiriev/openleaf/internal/store"
)

// errorMessages is matched in order; wrapping errors come before the errors
// they may wrap.
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrInvalidInput, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, app.MsgWrongPassword},
	{service.ErrUserNotFound, app.MsgUserNotFound},
	{service.ErrUserAlreadyExists, app.MsgNicknameAlreadyExists},
	{service.ErrNotLoggedIn, app.MsgNotLoggedIn},
	{service.ErrProviderNotConfigured, app.MsgProviderNotConfigured},
	{service.ErrCryptoFailure, app.MsgCryptoFailure},
	{service.ErrLinkNotFound, app.MsgLinkNotFound},
	{service.ErrLinkLocked, app.MsgLinkLocked},
	{service.ErrRemoteRemoveFailed, app.MsgProviderRemoveFailed},
	{service.ErrAccountNotFound, app.MsgAccountNotFound},
	{service.ErrSyncInProgress, app.MsgSyncInProgress},
	{service.ErrBackfillTimeout, app.MsgBackfillTimeout},
	{service.ErrRestartBudgetExceeded, app.MsgSyncRetryExhausted},
	{service.ErrCursorStalled, app.MsgSyncRetryExhausted},

	{ErrInvalidToken, app.MsgTokenIsExpiredOrInvalid},
	{crypto.ErrDecryptionFailed, app.MsgCryptoFailure},

	{adapter.ErrCredentialsNotSet, app.MsgProviderNotConfigured},
	{adapter.ErrItemNotFound, app.MsgItemNotFound},
	{adapter.ErrTransient, app.MsgProviderUnavailable},
	{adapter.ErrMutationDuringPagination, app.MsgSyncRetryExhausted},
	{adapter.ErrInvalidResponse, app.MsgInvalidProviderResponse},

	{store.ErrStorageLocked, app.MsgStorageLocked},
	{store.ErrStorage, app.MsgStorageError},
}

// messageFor turns an error into the message shown to the user. Provider
// errors without a dedicated message carry the provider's display message
// when it sent one.
func messageFor(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	var providerErr *adapter.ProviderError
	if errors.As(err, &providerErr) {
		if providerErr.DisplayMessage != "" {
			return providerErr.DisplayMessage
		}
		return app.MsgProviderRejected
	}

	return app.MsgInternalError
}
