// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/openleaf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages the local profile and the lifetime of the session.
type AuthService interface {
	// Register creates a new profile. It does not open a session.
	// Returns ErrInvalidInput for empty or malformed input and
	// ErrUserAlreadyExists for a taken nickname.
	Register(ctx context.Context, nickname, password string) (models.User, error)

	// Login verifies the master password, refreshes the session expiry,
	// records the profile as the current user and opens the session.
	// Returns ErrUserNotFound or ErrWrongPassword on bad credentials.
	Login(ctx context.Context, nickname, password string) (models.User, error)

	// Logout closes the session: decrypted tokens are dropped and the
	// gateway forgets its credentials. Logging out twice is not an error.
	Logout(ctx context.Context)

	// CurrentUser returns the profile of the open session or ErrNotLoggedIn.
	CurrentUser(ctx context.Context) (models.User, error)

	// LastUser returns the profile recorded by the last login or
	// registration, or ErrUserNotFound when none was recorded.
	LastUser(ctx context.Context) (models.User, error)
}

// LinkService owns provider credentials and links of the current user.
type LinkService interface {
	// UnlockSession decrypts the provider credentials (all-or-nothing) and
	// every link access token (best-effort per link) into the session.
	UnlockSession(ctx context.Context, password string) error

	// RegisterProvider seals and stores provider credentials after checking
	// the master password, then unlocks the session with them.
	RegisterProvider(ctx context.Context, password string, creds models.ProviderCredentials) error

	// ClearProvider removes the stored provider credentials. Links are kept.
	ClearProvider(ctx context.Context) error

	// CreateLinkToken asks the provider for a short-lived token that starts
	// the link widget for the current user.
	CreateLinkToken(ctx context.Context) (models.LinkToken, error)

	// CompleteLink exchanges a public token, persists the new link and runs
	// its initial sync. The link is kept even when that sync fails; the
	// failure is carried by the returned report.
	CompleteLink(ctx context.Context, password, publicToken, friendlyName string) (models.LinkSummary, models.LinkSyncReport, error)

	// RemoveLink invalidates the item at the provider and then deletes the
	// link with its accounts, transactions and cursor.
	RemoveLink(ctx context.Context, linkID string) error

	// ListLinks returns the links of the current user.
	ListLinks(ctx context.Context) ([]models.LinkSummary, error)
}

// SyncService runs transaction sync passes.
type SyncService interface {
	// SyncLink runs one pass for a single link. The outcome, including any
	// failure, is carried by the report.
	SyncLink(ctx context.Context, linkID string) models.LinkSyncReport

	// SyncAll runs one pass for every link of the current user. A failure
	// of one link never stops the others.
	SyncAll(ctx context.Context) (models.SyncReport, error)
}

// DataService serves the read models of synced data.
type DataService interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// ListTransactions returns transactions of an account of the current
	// user, newest first.
	ListTransactions(ctx context.Context, accountID string) ([]models.Transaction, error)
}

// AppInfoService exposes the application version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
