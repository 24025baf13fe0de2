// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// openleaf core surface and the loopback API.
//
// All Msg* constants are human-readable message strings that are returned
// in result bodies or written to log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording for the UI.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWrongPassword is returned when the master password does not match
	// the stored hash.
	MsgWrongPassword = "wrong password"

	// MsgUserNotFound is returned when no profile has the given nickname.
	MsgUserNotFound = "user not found"

	// MsgNicknameAlreadyExists is returned when a registration attempt is
	// rejected because the nickname is already in use.
	MsgNicknameAlreadyExists = "nickname already exists"

	// MsgNotLoggedIn is returned by operations that need an open session.
	MsgNotLoggedIn = "not logged in"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgProviderNotConfigured is returned when an operation needs the
	// aggregation provider before its credentials are set up.
	MsgProviderNotConfigured = "aggregation provider is not configured"

	// MsgCryptoFailure is returned when stored secrets cannot be decrypted
	// with the supplied password.
	MsgCryptoFailure = "could not decrypt stored credentials, check the password"

	// MsgLinkNotFound is returned when a link does not exist for the
	// current user.
	MsgLinkNotFound = "link not found"

	// MsgLinkLocked is reported for a link whose access token could not be
	// decrypted in this session.
	MsgLinkLocked = "link is locked, its access token could not be decrypted"

	// MsgAccountNotFound is returned when an account does not belong to the
	// current user.
	MsgAccountNotFound = "account not found"

	// MsgSyncInProgress is reported when a link is already syncing.
	MsgSyncInProgress = "sync already in progress"

	// MsgBackfillTimeout is reported when the provider did not finish
	// preparing historical transactions in time.
	MsgBackfillTimeout = "institution is still preparing transactions, try again later"

	// MsgSyncRetryExhausted is reported when upstream data kept changing
	// during every sync attempt.
	MsgSyncRetryExhausted = "transactions kept changing during sync, try again later"

	// MsgSomeLinksFailed is returned when at least one link failed to sync.
	MsgSomeLinksFailed = "some links failed to sync"

	// MsgProviderUnavailable is returned for network failures and upstream
	// 5xx or rate-limit responses.
	MsgProviderUnavailable = "aggregation provider is unavailable, try again later"

	// MsgProviderRejected is returned when the provider rejected a request
	// and gave no message for the user.
	MsgProviderRejected = "aggregation provider rejected the request"

	// MsgProviderRemoveFailed is returned when the provider refused to
	// remove an item; local data is kept.
	MsgProviderRemoveFailed = "could not remove the institution at the provider, local data kept"

	// MsgItemNotFound is returned when the institution connection no longer
	// exists at the provider.
	MsgItemNotFound = "institution connection is no longer valid, remove it and link again"

	// MsgInvalidProviderResponse is returned when the provider answered
	// with an unexpected payload.
	MsgInvalidProviderResponse = "unexpected response from aggregation provider"

	// MsgStorageError is returned when the local database failed.
	MsgStorageError = "local storage error"

	// MsgStorageLocked is returned when another openleaf process holds the
	// local database.
	MsgStorageLocked = "local storage is used by another openleaf process"

	// MsgInternalError is returned when an unexpected failure occurs that
	// the user cannot resolve.
	MsgInternalError = "internal error"
)
