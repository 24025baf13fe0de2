// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/openleaf/internal/app"
	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/service"
	"github.com/MKhiriev/openleaf/internal/utils"
	"github.com/MKhiriev/openleaf/internal/workers"
	"github.com/MKhiriev/openleaf/models"
)

var _ Core = (*App)(nil)

// App is the openleaf core. It is safe for concurrent use.
type App struct {
	services   *service.ClientServices
	appInfo    service.AppInfoService
	background workers.Worker
	cfg        config.App

	logger *logger.Logger
}

// NewApp creates the core. background is started by a successful login and
// stopped by logout or Close.
func NewApp(services *service.ClientServices, appInfo service.AppInfoService, background workers.Worker, cfg config.App, logger *logger.Logger) *App {
	if cfg.TokenSignKey == "" {
		cfg.TokenSignKey = utils.GenerateSignKey()
	}

	return &App{
		services:   services,
		appInfo:    appInfo,
		background: background,
		cfg:        cfg,
		logger:     logger,
	}
}

// Close stops background work. The session is left as is.
func (a *App) Close() {
	a.background.Stop()
}

func (a *App) Register(ctx context.Context, nickname, password string) models.Result {
	user, err := a.services.AuthService.Register(ctx, nickname, password)
	if err != nil {
		return a.fail(ctx, "client.Register", err)
	}

	a.logger.Info().Str("user_id", user.UserID).Msg("user registered")
	return ok()
}

// Login opens a session. When provider credentials are stored they are
// unlocked with the same password and every link is synced once before the
// background worker starts. A failed unlock closes the session again; a
// failed sync does not fail the login.
func (a *App) Login(ctx context.Context, nickname, password string) models.LoginResult {
	user, err := a.services.AuthService.Login(ctx, nickname, password)
	if err != nil {
		return models.LoginResult{Result: a.fail(ctx, "client.Login", err)}
	}

	if user.HasProviderCredentials() {
		if err = a.services.LinkService.UnlockSession(ctx, password); err != nil {
			a.services.AuthService.Logout(ctx)
			return models.LoginResult{Result: a.fail(ctx, "client.Login", err)}
		}
	}

	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, user.UserID, user.SessionExpiresAt, a.cfg.TokenSignKey)
	if err != nil {
		a.services.AuthService.Logout(ctx)
		return models.LoginResult{Result: a.fail(ctx, "client.Login", err)}
	}

	result := models.LoginResult{Result: ok(), User: &user, Token: token.SignedString}

	if user.HasProviderCredentials() {
		report, syncErr := a.services.SyncService.SyncAll(ctx)
		if syncErr != nil {
			logger.FromContext(ctx).Err(syncErr).Str("func", "client.Login").Msg("initial sync failed")
		} else {
			fillMessages(&report)
			result.Sync = &report
		}
	}

	a.background.Start(context.WithoutCancel(ctx))

	a.logger.Info().Str("user_id", user.UserID).Msg("user logged in")
	return result
}

// Logout stops the background worker and closes the session.
func (a *App) Logout(ctx context.Context) models.Result {
	a.background.Stop()
	a.services.AuthService.Logout(ctx)

	a.logger.Info().Msg("user logged out")
	return ok()
}

// Authenticate returns ErrInvalidToken for tokens this process did not
// sign or that expired, and service.ErrNotLoggedIn when the token belongs
// to a session that is no longer open.
func (a *App) Authenticate(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := a.services.AuthService.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if user.UserID != token.UserID {
		return "", service.ErrNotLoggedIn
	}

	return user.UserID, nil
}

func (a *App) SetupProviderCredentials(ctx context.Context, password, clientID, secret string) models.Result {
	creds := models.ProviderCredentials{ClientID: clientID, Secret: secret}
	if err := a.services.LinkService.RegisterProvider(ctx, password, creds); err != nil {
		return a.fail(ctx, "client.SetupProviderCredentials", err)
	}
	return ok()
}

func (a *App) ClearProviderCredentials(ctx context.Context) models.Result {
	if err := a.services.LinkService.ClearProvider(ctx); err != nil {
		return a.fail(ctx, "client.ClearProviderCredentials", err)
	}
	return ok()
}

func (a *App) CreateLinkToken(ctx context.Context) models.LinkTokenResult {
	token, err := a.services.LinkService.CreateLinkToken(ctx)
	if err != nil {
		return models.LinkTokenResult{Result: a.fail(ctx, "client.CreateLinkToken", err)}
	}
	return models.LinkTokenResult{Result: ok(), LinkToken: token.LinkToken}
}

// CompletePublicTokenExchange links an institution. The result is
// successful once the link is stored, even when its first sync failed.
func (a *App) CompletePublicTokenExchange(ctx context.Context, password, publicToken, friendlyName string) models.LinkResult {
	link, report, err := a.services.LinkService.CompleteLink(ctx, password, publicToken, friendlyName)
	if err != nil {
		return models.LinkResult{Result: a.fail(ctx, "client.CompletePublicTokenExchange", err)}
	}

	report.Error = messageFor(report.Err)
	return models.LinkResult{Result: ok(), Link: &link, Sync: &report}
}

func (a *App) RemoveLink(ctx context.Context, linkID string) models.Result {
	if err := a.services.LinkService.RemoveLink(ctx, linkID); err != nil {
		return a.fail(ctx, "client.RemoveLink", err)
	}
	return ok()
}

func (a *App) ListLinks(ctx context.Context) models.LinksResult {
	links, err := a.services.LinkService.ListLinks(ctx)
	if err != nil {
		return models.LinksResult{Result: a.fail(ctx, "client.ListLinks", err)}
	}
	return models.LinksResult{Result: ok(), Links: nonNil(links)}
}

// SyncAllLinks runs one sync pass over every link. The result is
// unsuccessful when any link failed; per-link outcomes are in the report.
func (a *App) SyncAllLinks(ctx context.Context) models.SyncResult {
	report, err := a.services.SyncService.SyncAll(ctx)
	if err != nil {
		return models.SyncResult{Result: a.fail(ctx, "client.SyncAllLinks", err)}
	}

	fillMessages(&report)
	result := models.SyncResult{Result: ok(), Report: &report}
	if report.Failed > 0 {
		result.Result = models.Result{Error: app.MsgSomeLinksFailed}
	}
	return result
}

func (a *App) ListAccounts(ctx context.Context) models.AccountsResult {
	accounts, err := a.services.DataService.ListAccounts(ctx)
	if err != nil {
		return models.AccountsResult{Result: a.fail(ctx, "client.ListAccounts", err)}
	}
	return models.AccountsResult{Result: ok(), Accounts: nonNil(accounts)}
}

func (a *App) ListTransactions(ctx context.Context, accountID string) models.TransactionsResult {
	txs, err := a.services.DataService.ListTransactions(ctx, accountID)
	if err != nil {
		return models.TransactionsResult{Result: a.fail(ctx, "client.ListTransactions", err)}
	}
	return models.TransactionsResult{Result: ok(), Transactions: nonNil(txs)}
}

func (a *App) Version(ctx context.Context) string {
	return a.appInfo.GetAppVersion(ctx)
}

// fail logs err and converts it into an unsuccessful result. Errors caused
// by the caller are logged at debug level.
func (a *App) fail(ctx context.Context, funcName string, err error) models.Result {
	log := logger.FromContext(ctx)
	if isUserError(err) {
		log.Debug().Err(err).Str("func", funcName).Msg("operation rejected")
	} else {
		log.Err(err).Str("func", funcName).Msg("operation failed")
	}

	return models.Result{Error: messageFor(err)}
}

func isUserError(err error) bool {
	return errors.Is(err, service.ErrInvalidInput) ||
		errors.Is(err, service.ErrWrongPassword) ||
		errors.Is(err, service.ErrUserNotFound) ||
		errors.Is(err, service.ErrUserAlreadyExists) ||
		errors.Is(err, service.ErrNotLoggedIn) ||
		errors.Is(err, service.ErrLinkNotFound) ||
		errors.Is(err, service.ErrAccountNotFound)
}

func fillMessages(report *models.SyncReport) {
	for i := range report.Links {
		report.Links[i].Error = messageFor(report.Links[i].Err)
	}
}

func ok() models.Result {
	return models.Result{Success: true}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
