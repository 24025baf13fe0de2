// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/crypto"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/models"
)

// ── RegisterProvider ─────────────────────────────────────────────────────────

func TestRegisterProvider_SealsCredentials(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	ctx := context.Background()

	env.withProvider(t)

	stored, err := env.storages.Users.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	require.True(t, stored.HasProviderCredentials())

	assert.NotEqual(t, "sek", stored.EncryptedAPISecret.CipherText)
	assert.NotEqual(t, "cid", stored.EncryptedAPIClientID.CipherText)

	secret, err := env.vault.Decrypt(*stored.EncryptedAPISecret, testPassword)
	require.NoError(t, err)
	assert.Equal(t, "sek", secret)

	clientID, err := env.vault.Decrypt(*stored.EncryptedAPIClientID, testPassword)
	require.NoError(t, err)
	assert.Equal(t, "cid", clientID)

	_, err = env.vault.Decrypt(*stored.EncryptedAPISecret, "Secret123?")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestRegisterProvider_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	ctx := context.Background()

	err := env.links.RegisterProvider(ctx, "not-the-password", models.ProviderCredentials{ClientID: "cid", Secret: "sek"})

	assert.ErrorIs(t, err, ErrWrongPassword)
	stored, err := env.storages.Users.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.False(t, stored.HasProviderCredentials())
}

func TestRegisterProvider_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		creds models.ProviderCredentials
	}{
		{name: "empty client id", creds: models.ProviderCredentials{Secret: "sek"}},
		{name: "empty secret", creds: models.ProviderCredentials{ClientID: "cid"}},
		{name: "blank secret", creds: models.ProviderCredentials{ClientID: "cid", Secret: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.login(t, "alice")

			err := env.links.RegisterProvider(context.Background(), testPassword, tt.creds)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterProvider_NotLoggedIn(t *testing.T) {
	env := newTestEnv(t)

	err := env.links.RegisterProvider(context.Background(), testPassword, models.ProviderCredentials{ClientID: "cid", Secret: "sek"})

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── UnlockSession ────────────────────────────────────────────────────────────

func TestUnlockSession_BestEffortPerLink(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.withProvider(t)

	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	env.addLink(t, user.UserID, "L2", "tok-2", "sealed-under-another-password")
	env.session.ClearTokens()

	env.gateway.EXPECT().SetCredentials("cid", "sek")

	err := env.links.UnlockSession(context.Background(), testPassword)

	require.NoError(t, err)
	token, ok := env.session.Token("L1")
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)

	_, ok = env.session.Token("L2")
	assert.False(t, ok)
	assert.True(t, env.session.IsLocked("L2"))
}

func TestUnlockSession_WrongPasswordUnlocksNothing(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.withProvider(t)
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	env.session.ClearTokens()

	// no SetCredentials expectation: the gateway must stay untouched
	err := env.links.UnlockSession(context.Background(), "wrong")

	assert.ErrorIs(t, err, ErrCryptoFailure)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	_, ok := env.session.Token("L1")
	assert.False(t, ok)
}

func TestUnlockSession_NoProvider(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "alice")

	err := env.links.UnlockSession(context.Background(), testPassword)

	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

// ── ClearProvider ────────────────────────────────────────────────────────────

func TestClearProvider_KeepsLinks(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.withProvider(t)
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	ctx := context.Background()

	env.gateway.EXPECT().ClearCredentials()

	err := env.links.ClearProvider(ctx)

	require.NoError(t, err)
	stored, err := env.storages.Users.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.False(t, stored.HasProviderCredentials())

	links, err := env.storages.Links.ListLinks(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
	_, ok := env.session.Token("L1")
	assert.False(t, ok)
}

// ── CreateLinkToken ──────────────────────────────────────────────────────────

func TestCreateLinkToken(t *testing.T) {
	t.Run("uses the session user id", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.login(t, "alice")

		env.gateway.EXPECT().Configured().Return(true)
		env.gateway.EXPECT().CreateLinkToken(gomock.Any(), user.UserID).
			Return(models.LinkToken{LinkToken: "link-sandbox-1"}, nil)

		token, err := env.links.CreateLinkToken(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "link-sandbox-1", token.LinkToken)
	})

	t.Run("provider not configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.login(t, "alice")
		env.gateway.EXPECT().Configured().Return(false)

		_, err := env.links.CreateLinkToken(context.Background())

		assert.ErrorIs(t, err, ErrProviderNotConfigured)
	})

	t.Run("credentials dropped in between", func(t *testing.T) {
		env := newTestEnv(t)
		env.login(t, "alice")
		env.gateway.EXPECT().Configured().Return(true)
		env.gateway.EXPECT().CreateLinkToken(gomock.Any(), gomock.Any()).Return(models.LinkToken{}, adapter.ErrCredentialsNotSet)

		_, err := env.links.CreateLinkToken(context.Background())

		assert.ErrorIs(t, err, ErrProviderNotConfigured)
	})
}

// ── CompleteLink ─────────────────────────────────────────────────────────────

func TestCompleteLink_PersistsAndSyncs(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	ctx := context.Background()

	env.gateway.EXPECT().Configured().Return(true)
	env.gateway.EXPECT().ExchangePublicToken(gomock.Any(), "public-sandbox-1").
		Return(models.TokenExchange{AccessToken: "access-1", ItemID: "item-1"}, nil)
	env.gateway.EXPECT().GetAccounts(gomock.Any(), "access-1").Return(snapshot("item-1"), nil).Times(2)
	env.gateway.EXPECT().GetInstitution(gomock.Any(), "ins_3").
		Return(models.Institution{InstitutionID: "ins_3", Name: "Tattersall Federal Credit Union"}, nil)
	env.gateway.EXPECT().SyncStatus(gomock.Any(), "access-1").Return(models.UpdateStatusHistoricalComplete, nil)
	env.gateway.EXPECT().SyncTransactionsPage(gomock.Any(), "access-1", "", 100).Return(models.TransactionsSyncPage{
		Added:      []models.Transaction{tx("t1", "5.00")},
		NextCursor: "c1",
	}, nil)

	summary, report, err := env.links.CompleteLink(ctx, testPassword, "public-sandbox-1", "")

	require.NoError(t, err)
	assert.True(t, report.Success, "sync failed: %v", report.Err)
	assert.Equal(t, "Tattersall Federal Credit Union", summary.FriendlyName)
	assert.Equal(t, "ins_3", summary.InstitutionID)
	assert.True(t, summary.Unlocked)
	assert.True(t, summary.Synced)

	stored, err := env.storages.Links.GetLink(ctx, summary.LinkID)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, stored.UserID)
	assert.Equal(t, "item-1", stored.ItemID)
	assert.Equal(t, "c1", stored.SyncCursor)

	token, err := env.vault.Decrypt(stored.EncryptedAccessToken, testPassword)
	require.NoError(t, err)
	assert.Equal(t, "access-1", token)

	inSession, ok := env.session.Token(summary.LinkID)
	require.True(t, ok)
	assert.Equal(t, "access-1", inSession)
	assert.Equal(t, 1, env.countTransactions(t, summary.LinkID))
}

func TestCompleteLink_KeptWhenInitialSyncFails(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	ctx := context.Background()

	env.gateway.EXPECT().Configured().Return(true)
	env.gateway.EXPECT().ExchangePublicToken(gomock.Any(), "public-sandbox-1").
		Return(models.TokenExchange{AccessToken: "access-1", ItemID: "item-1"}, nil)
	env.gateway.EXPECT().GetAccounts(gomock.Any(), "access-1").Return(models.AccountsSnapshot{}, transientErr())
	env.gateway.EXPECT().SyncStatus(gomock.Any(), "access-1").Return(models.TransactionsUpdateStatus(""), transientErr())

	summary, report, err := env.links.CompleteLink(ctx, testPassword, "public-sandbox-1", "My bank")

	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.ErrorIs(t, report.Err, adapter.ErrTransient)
	assert.Equal(t, "My bank", summary.FriendlyName)
	assert.False(t, summary.Synced)

	links, err := env.storages.Links.ListLinks(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "item-1", links[0].ItemID)
	assert.Empty(t, links[0].InstitutionID)
}

func TestCompleteLink_Rejections(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		env := newTestEnv(t)
		env.login(t, "alice")
		env.gateway.EXPECT().Configured().Return(true)

		_, _, err := env.links.CompleteLink(context.Background(), "wrong", "public-sandbox-1", "")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("provider not configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.login(t, "alice")
		env.gateway.EXPECT().Configured().Return(false)

		_, _, err := env.links.CompleteLink(context.Background(), testPassword, "public-sandbox-1", "")

		assert.ErrorIs(t, err, ErrProviderNotConfigured)
	})

	t.Run("empty public token", func(t *testing.T) {
		env := newTestEnv(t)
		env.login(t, "alice")

		_, _, err := env.links.CompleteLink(context.Background(), testPassword, " ", "")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("exchange fails", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.login(t, "alice")
		env.gateway.EXPECT().Configured().Return(true)
		env.gateway.EXPECT().ExchangePublicToken(gomock.Any(), "public-sandbox-1").
			Return(models.TokenExchange{}, &adapter.ProviderError{StatusCode: 400, Code: "INVALID_PUBLIC_TOKEN"})

		_, _, err := env.links.CompleteLink(context.Background(), testPassword, "public-sandbox-1", "")

		var providerErr *adapter.ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, "INVALID_PUBLIC_TOKEN", providerErr.Code)

		links, err := env.storages.Links.ListLinks(context.Background(), user.UserID)
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

// ── RemoveLink ───────────────────────────────────────────────────────────────

func seedLinkData(t *testing.T, env *testEnv, linkID string) {
	t.Helper()

	ctx := context.Background()
	account := snapshot("item-" + linkID).Accounts[0]
	account.LinkID = linkID
	require.NoError(t, env.storages.Accounts.UpsertAccounts(ctx, account))
	require.NoError(t, env.storages.Transactions.UpsertTransactions(ctx, linkID, tx(linkID+"-t1", "1.00")))
	require.NoError(t, env.storages.Links.SetCursor(ctx, linkID, "c9"))
}

func TestRemoveLink_RemoteFirstThenLocal(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	seedLinkData(t, env, "L1")
	ctx := context.Background()

	env.gateway.EXPECT().RemoveItem(gomock.Any(), "tok-1").Return(nil)

	err := env.links.RemoveLink(ctx, "L1")

	require.NoError(t, err)
	_, err = env.storages.Links.GetLink(ctx, "L1")
	assert.ErrorIs(t, err, store.ErrLinkNotFound)

	accounts, err := env.storages.Accounts.ListAccountsByLink(ctx, "L1")
	require.NoError(t, err)
	assert.Empty(t, accounts)
	assert.Zero(t, env.countTransactions(t, "L1"))

	_, ok := env.session.Token("L1")
	assert.False(t, ok)
}

func TestRemoveLink_RemoteFailureKeepsLocalData(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	seedLinkData(t, env, "L1")
	ctx := context.Background()

	env.gateway.EXPECT().RemoveItem(gomock.Any(), "tok-1").Return(transientErr())

	err := env.links.RemoveLink(ctx, "L1")

	assert.ErrorIs(t, err, ErrRemoteRemoveFailed)
	assert.ErrorIs(t, err, adapter.ErrTransient)

	_, err = env.storages.Links.GetLink(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, 1, env.countTransactions(t, "L1"))

	_, ok := env.session.Token("L1")
	assert.True(t, ok)
}

func TestRemoveLink_ItemAlreadyGone(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	ctx := context.Background()

	env.gateway.EXPECT().RemoveItem(gomock.Any(), "tok-1").
		Return(&adapter.ProviderError{StatusCode: 400, Code: adapter.CodeItemNotFound})

	err := env.links.RemoveLink(ctx, "L1")

	require.NoError(t, err)
	_, err = env.storages.Links.GetLink(ctx, "L1")
	assert.ErrorIs(t, err, store.ErrLinkNotFound)
}

func TestRemoveLink_LockedLinkRemovedLocally(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	env.session.MarkLocked("L1")
	ctx := context.Background()

	// no RemoveItem expectation: there is no token to call the provider with
	err := env.links.RemoveLink(ctx, "L1")

	require.NoError(t, err)
	_, err = env.storages.Links.GetLink(ctx, "L1")
	assert.ErrorIs(t, err, store.ErrLinkNotFound)
	assert.False(t, env.session.IsLocked("L1"))
}

func TestRemoveLink_AfterProviderClearedKeepsLink(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.withProvider(t)
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	seedLinkData(t, env, "L1")
	ctx := context.Background()

	env.gateway.EXPECT().ClearCredentials()
	require.NoError(t, env.links.ClearProvider(ctx))

	// no RemoveItem expectation: the sealed token stays until the provider is back
	err := env.links.RemoveLink(ctx, "L1")

	assert.ErrorIs(t, err, ErrProviderNotConfigured)
	_, err = env.storages.Links.GetLink(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, 1, env.countTransactions(t, "L1"))
}

func TestRemoveLink_ForeignOrUnknownLink(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "alice")
	ctx := context.Background()

	bob := models.User{UserID: "bob-id", Nickname: "bob", PasswordHash: "x"}
	require.NoError(t, env.storages.Users.CreateUser(ctx, bob))
	env.addLink(t, bob.UserID, "B1", "tok-b", testPassword)

	assert.ErrorIs(t, env.links.RemoveLink(ctx, "B1"), ErrLinkNotFound)
	assert.ErrorIs(t, env.links.RemoveLink(ctx, "missing"), ErrLinkNotFound)

	_, err := env.storages.Links.GetLink(ctx, "B1")
	assert.NoError(t, err)
}

// ── ListLinks ────────────────────────────────────────────────────────────────

func TestListLinks_ReportsUnlockState(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	env.addLink(t, user.UserID, "L2", "tok-2", testPassword)
	env.session.MarkLocked("L2")
	require.NoError(t, env.storages.Links.SetCursor(context.Background(), "L1", "c1"))

	links, err := env.links.ListLinks(context.Background())

	require.NoError(t, err)
	require.Len(t, links, 2)
	byID := map[string]models.LinkSummary{}
	for _, l := range links {
		byID[l.LinkID] = l
	}
	assert.True(t, byID["L1"].Unlocked)
	assert.True(t, byID["L1"].Synced)
	assert.False(t, byID["L2"].Unlocked)
	assert.False(t, byID["L2"].Synced)
}
