// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/openleaf/models"
)

func TestDataService_ListAccountsAndTransactions(t *testing.T) {
	env := newTestEnv(t)
	user := env.login(t, "alice")
	env.addLink(t, user.UserID, "L1", "tok-1", testPassword)
	seedLinkData(t, env, "L1")
	ctx := context.Background()

	accounts, err := env.data.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acc-1", accounts[0].AccountID)

	txs, err := env.data.ListTransactions(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "L1-t1", txs[0].TransactionID)
}

func TestDataService_ForeignAccountHidden(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "alice")
	ctx := context.Background()

	bob := models.User{UserID: "bob-id", Nickname: "bob", PasswordHash: "x"}
	require.NoError(t, env.storages.Users.CreateUser(ctx, bob))
	env.addLink(t, bob.UserID, "B1", "tok-b", testPassword)
	seedLinkData(t, env, "B1")

	accounts, err := env.data.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	_, err = env.data.ListTransactions(ctx, "acc-1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestDataService_NotLoggedIn(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.data.ListAccounts(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = env.data.ListTransactions(context.Background(), "acc-1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession()

	_, ok := s.User()
	assert.False(t, ok)

	s.Open(models.User{UserID: "u1", SessionExpiresAt: time.Now().Add(time.Hour)})
	s.SetToken("L2", "tok-2")
	s.SetToken("L1", "tok-1")
	s.MarkLocked("L3")

	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "u1", user.UserID)
	token, ok := s.Token("L2")
	require.True(t, ok)
	assert.Equal(t, "tok-2", token)
	assert.True(t, s.IsLocked("L3"))

	s.SetToken("L3", "tok-3")
	assert.False(t, s.IsLocked("L3"))

	s.Forget("L1")
	_, ok = s.Token("L1")
	assert.False(t, ok)

	s.Close()
	_, ok = s.User()
	assert.False(t, ok)
	_, ok = s.Token("L2")
	assert.False(t, ok)
}

func TestSession_Expired(t *testing.T) {
	s := NewSession()
	expiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return expiry.Add(time.Second) }

	s.Open(models.User{UserID: "u1", SessionExpiresAt: expiry})

	_, ok := s.User()
	assert.False(t, ok)
}
