// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialsRequest is the body of register and login calls.
type CredentialsRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// ProviderSetupRequest carries aggregation provider credentials together
// with the master password that seals them.
type ProviderSetupRequest struct {
	Password string `json:"password"`
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
}

// CompleteLinkRequest is the body of the public token exchange.
// FriendlyName is optional.
type CompleteLinkRequest struct {
	Password     string `json:"password"`
	PublicToken  string `json:"public_token"`
	FriendlyName string `json:"friendly_name,omitempty"`
}
