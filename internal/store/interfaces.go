// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/openleaf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists the local profile.
type UserRepository interface {
	// CreateUser stores a new profile. A taken nickname yields
	// [ErrNicknameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) error

	// GetUser returns the profile with the given id or [ErrUserNotFound].
	GetUser(ctx context.Context, userID string) (models.User, error)

	// FindUserByNickname returns the profile with the given nickname or
	// [ErrUserNotFound].
	FindUserByNickname(ctx context.Context, nickname string) (models.User, error)

	// UpdateSessionExpiry refreshes the session expiry of a profile.
	UpdateSessionExpiry(ctx context.Context, userID string, expiresAt time.Time) error

	// SetProviderCredentials stores the sealed provider secret and client id.
	SetProviderCredentials(ctx context.Context, userID string, secret, clientID models.EncryptedSecret) error

	// ClearProviderCredentials removes both sealed provider fields.
	ClearProviderCredentials(ctx context.Context, userID string) error
}

// SettingsRepository is a small key/value store for client state.
type SettingsRepository interface {
	// Get returns the value of key or [ErrSettingNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value of key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// LinkRepository persists links. The sealed access token is serialized to
// JSON text on write and parsed back on read.
type LinkRepository interface {
	AddLink(ctx context.Context, link models.Link) error
	UpdateLink(ctx context.Context, link models.Link) error
	GetLink(ctx context.Context, linkID string) (models.Link, error)
	ListLinks(ctx context.Context, userID string) ([]models.Link, error)
	DeleteLink(ctx context.Context, linkID string) error

	// GetCursor returns the committed sync cursor of a link; an empty string
	// means the link has never completed a sync pass.
	GetCursor(ctx context.Context, linkID string) (string, error)

	// SetCursor commits the sync cursor of a link, or returns
	// [ErrLinkNotFound] when the link no longer exists.
	SetCursor(ctx context.Context, linkID, cursor string) error
}

// AccountRepository persists accounts keyed by (link id, account id).
type AccountRepository interface {
	UpsertAccounts(ctx context.Context, accounts ...models.Account) error
	ListAccountsByUser(ctx context.Context, userID string) ([]models.Account, error)
	ListAccountsByLink(ctx context.Context, linkID string) ([]models.Account, error)
	DeleteAccountsByLink(ctx context.Context, linkID string) error
}

// TransactionRepository persists transactions keyed by transaction id.
type TransactionRepository interface {
	// UpsertTransactions inserts new transactions of a link and overwrites
	// the mutable fields of existing ones.
	UpsertTransactions(ctx context.Context, linkID string, txs ...models.Transaction) error

	// DeleteTransactions removes transactions by id; unknown ids are ignored.
	DeleteTransactions(ctx context.Context, transactionIDs ...string) error

	DeleteTransactionsByLink(ctx context.Context, linkID string) error
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error)
	CountTransactionsByLink(ctx context.Context, linkID string) (int, error)
}

// Repositories bundles repositories sharing one database handle, either the
// connection pool or an open transaction.
type Repositories struct {
	Users        UserRepository
	Settings     SettingsRepository
	Links        LinkRepository
	Accounts     AccountRepository
	Transactions TransactionRepository
}

// TxManager runs a function against repositories bound to one database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
