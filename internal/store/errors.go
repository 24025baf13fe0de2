// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrStorage marks every failure of the persistence layer itself (I/O,
// corruption, driver, constraint errors other than the ones below).
// Callers must never treat it as "no data yet".
var ErrStorage = errors.New("storage error")

// Sentinel errors returned by repository methods to signal well-known
// domain conditions. Callers should use [errors.Is] to match against these.
var (
	// ErrNicknameAlreadyExists is returned when a profile with the same
	// nickname is already stored.
	ErrNicknameAlreadyExists = errors.New("nickname already exists")

	// ErrUserNotFound is returned when no profile matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrLinkAlreadyExists is returned when a link id is reused.
	ErrLinkAlreadyExists = errors.New("link already exists")

	// ErrLinkNotFound is returned when no link matches the id. A cursor
	// write for a removed link reports it too, which aborts the sync pass.
	ErrLinkNotFound = errors.New("link was not found")

	// ErrSettingNotFound is returned when a settings key is absent.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrStorageLocked is returned when another process holds the data lock.
	ErrStorageLocked = errors.New("storage is used by another process")
)

// Low-level database operation errors. They are wrapped together with
// [ErrStorage].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
