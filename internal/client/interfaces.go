// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/openleaf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Core is the set of operations exposed to the user interface.
type Core interface {
	Register(ctx context.Context, nickname, password string) models.Result
	Login(ctx context.Context, nickname, password string) models.LoginResult
	Logout(ctx context.Context) models.Result

	// Authenticate checks a session token issued by Login against the open
	// session and returns its user id.
	Authenticate(ctx context.Context, token string) (string, error)

	SetupProviderCredentials(ctx context.Context, password, clientID, secret string) models.Result
	ClearProviderCredentials(ctx context.Context) models.Result

	CreateLinkToken(ctx context.Context) models.LinkTokenResult
	CompletePublicTokenExchange(ctx context.Context, password, publicToken, friendlyName string) models.LinkResult
	RemoveLink(ctx context.Context, linkID string) models.Result
	ListLinks(ctx context.Context) models.LinksResult

	SyncAllLinks(ctx context.Context) models.SyncResult

	ListAccounts(ctx context.Context) models.AccountsResult
	ListTransactions(ctx context.Context, accountID string) models.TransactionsResult

	Version(ctx context.Context) string
}
