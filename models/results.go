// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the structured outcome returned by every public operation of
// the client core. Error is a user-facing message and is empty on success.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// LoginResult is returned by login and carries the session details and the
// report of the sync run triggered by the login.
type LoginResult struct {
	Result
	User  *User       `json:"user,omitempty"`
	Token string      `json:"-"`
	Sync  *SyncReport `json:"sync,omitempty"`
}

// LinkTokenResult is returned by link token creation.
type LinkTokenResult struct {
	Result
	LinkToken string `json:"link_token,omitempty"`
}

// LinkResult is returned by public token exchange.
// A link can be created while its initial sync fails; Sync reports that.
type LinkResult struct {
	Result
	Link *LinkSummary    `json:"link,omitempty"`
	Sync *LinkSyncReport `json:"sync,omitempty"`
}

// SyncResult is returned by a sync run over all links.
// Success is false when at least one link failed.
type SyncResult struct {
	Result
	Report *SyncReport `json:"report,omitempty"`
}

// LinksResult lists the links of the current user.
type LinksResult struct {
	Result
	Links []LinkSummary `json:"links"`
}

// AccountsResult lists the accounts of the current user.
type AccountsResult struct {
	Result
	Accounts []Account `json:"accounts"`
}

// TransactionsResult lists the transactions of an account.
type TransactionsResult struct {
	Result
	Transactions []Transaction `json:"transactions"`
}
