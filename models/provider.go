// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProviderCredentials are the decrypted aggregation API credentials.
// They live only in memory for the duration of a session.
type ProviderCredentials struct {
	ClientID string `json:"client_id" validate:"required,notblank_secret"`
	Secret   string `json:"secret" validate:"required,notblank_secret"`
}

// LinkToken is a short-lived token the UI hands to the provider's link widget.
type LinkToken struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
}

// TokenExchange is the result of exchanging a public token.
type TokenExchange struct {
	AccessToken string
	ItemID      string
}

// Institution identifies a financial institution.
type Institution struct {
	InstitutionID string `json:"institution_id"`
	Name          string `json:"name"`
}

// AccountsSnapshot is the provider's current view of an item and its accounts.
// InstitutionName is set only when the provider reports it inline.
type AccountsSnapshot struct {
	ItemID          string
	InstitutionID   string
	InstitutionName string
	Accounts        []Account
}

// TransactionsUpdateStatus is the provider-reported backfill state of an item.
type TransactionsUpdateStatus string

const (
	UpdateStatusUnknown            TransactionsUpdateStatus = "TRANSACTIONS_UPDATE_STATUS_UNKNOWN"
	UpdateStatusNotReady           TransactionsUpdateStatus = "NOT_READY"
	UpdateStatusInitialComplete    TransactionsUpdateStatus = "INITIAL_UPDATE_COMPLETE"
	UpdateStatusHistoricalComplete TransactionsUpdateStatus = "HISTORICAL_UPDATE_COMPLETE"
)

// Ready reports whether the historical backfill can be considered complete.
// Providers that do not report a status are treated as ready.
func (s TransactionsUpdateStatus) Ready() bool {
	switch s {
	case UpdateStatusHistoricalComplete, UpdateStatusUnknown, "":
		return true
	default:
		return false
	}
}

// TransactionsSyncPage is one page of the provider's transaction change stream.
// Added, Modified and Removed are disjoint within a page.
type TransactionsSyncPage struct {
	Added        []Transaction
	Modified     []Transaction
	Removed      []string
	NextCursor   string
	HasMore      bool
	UpdateStatus TransactionsUpdateStatus
}
