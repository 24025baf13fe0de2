// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Aggregation API Gateway: a typed client for the
// Plaid-compatible JSON API the client uses to link institutions and pull
// accounts and transactions.
//
// The primary abstraction is [AggregatorAdapter], which decouples the
// service layer from the wire format. Every response is decoded into an
// explicit type and validated before it leaves the package; a 2xx body with
// an unexpected shape fails with [ErrInvalidResponse] instead of leaking
// zero values upstream.
//
// Upstream failures are reported as [*ProviderError] and match the sentinel
// values in errors.go with [errors.Is] (e.g. [ErrMutationDuringPagination],
// [ErrItemNotFound], [ErrTransient]).
package adapter

import (
	"context"

	"github.com/MKhiriev/openleaf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AggregatorAdapter defines the calls the client makes to the aggregation
// provider. Implementations must be safe for concurrent use: the sync
// engine calls it from several goroutines while the UI may rotate the
// credentials.
type AggregatorAdapter interface {
	// SetCredentials stores the provider client id and secret attached to
	// every subsequent request.
	SetCredentials(clientID, secret string)

	// ClearCredentials forgets the credentials; later calls fail with
	// [ErrCredentialsNotSet].
	ClearCredentials()

	// Configured reports whether credentials are set.
	Configured() bool

	// CreateLinkToken creates a short-lived token for the provider's link
	// widget on behalf of clientUserID.
	CreateLinkToken(ctx context.Context, clientUserID string) (models.LinkToken, error)

	// ExchangePublicToken trades the public token returned by the link
	// widget for a long-lived access token and the item id.
	ExchangePublicToken(ctx context.Context, publicToken string) (models.TokenExchange, error)

	// GetAccounts returns the item and its accounts with current balances.
	GetAccounts(ctx context.Context, accessToken string) (models.AccountsSnapshot, error)

	// GetInstitution resolves an institution id to its display name.
	GetInstitution(ctx context.Context, institutionID string) (models.Institution, error)

	// SyncTransactionsPage fetches one page of the transaction change stream
	// after cursor. An empty cursor starts from the beginning of history.
	SyncTransactionsPage(ctx context.Context, accessToken, cursor string, count int) (models.TransactionsSyncPage, error)

	// SyncStatus reports the backfill state of the item without consuming
	// the stream.
	SyncStatus(ctx context.Context, accessToken string) (models.TransactionsUpdateStatus, error)

	// RemoveItem invalidates the access token and removes the item upstream.
	RemoveItem(ctx context.Context, accessToken string) error
}
