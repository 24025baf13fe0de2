// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication and session errors.
var (
	// ErrInvalidInput is returned when a caller supplies empty or malformed
	// arguments (nickname, password, tokens, ids).
	ErrInvalidInput = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the master password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNotLoggedIn is returned by every operation that needs an open
	// session when none is open or the session has expired.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Provider and link errors.
var (
	// ErrProviderNotConfigured is returned when an operation needs the
	// aggregation provider but no credentials are stored or unlocked.
	ErrProviderNotConfigured = errors.New("aggregation provider is not configured")

	// ErrCryptoFailure is returned when a stored secret cannot be opened with
	// the supplied password.
	ErrCryptoFailure = errors.New("failed to decrypt stored secret")

	ErrLinkNotFound = errors.New("link not found")

	// ErrLinkLocked is reported for a stored link whose access token could
	// not be decrypted during unlock; the link is skipped by sync.
	ErrLinkLocked = errors.New("link access token is not available in this session")

	// ErrRemoteRemoveFailed is returned when the provider refused to remove
	// an item; local data is left in place.
	ErrRemoteRemoveFailed = errors.New("failed to remove item at provider")

	ErrAccountNotFound = errors.New("account not found")
)

// Sync engine errors.
var (
	// ErrSyncInProgress is returned when a sync pass for the same link is
	// already running.
	ErrSyncInProgress = errors.New("sync already in progress for link")

	// ErrBackfillTimeout is returned when the provider did not finish the
	// historical backfill within the configured timeout.
	ErrBackfillTimeout = errors.New("timed out waiting for initial transactions backfill")

	// ErrRestartBudgetExceeded is returned when pagination was restarted
	// more times than allowed because upstream data kept mutating.
	ErrRestartBudgetExceeded = errors.New("sync restart budget exceeded")

	// ErrCursorStalled is returned when the provider reports more pages but
	// does not advance the cursor.
	ErrCursorStalled = errors.New("sync cursor did not advance")
)

// ErrVersionIsNotSpecified is returned when neither the configuration nor
// the build carries an application version.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")
