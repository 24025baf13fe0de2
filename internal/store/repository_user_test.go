// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/openleaf/models"
)

// ── CreateUser / FindUserByNickname ─────────────────────────────────────────

func TestUserRepository_CreateAndFind(t *testing.T) {
	repos := newTestDB(t).Repositories()
	ctx := context.Background()

	// Arrange
	user := seedUser(t, repos, "alice")

	// Act
	byNickname, err := repos.Users.FindUserByNickname(ctx, "alice")
	require.NoError(t, err)
	byID, err := repos.Users.GetUser(ctx, user.UserID)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, user.UserID, byNickname.UserID)
	assert.Equal(t, user.PasswordHash, byNickname.PasswordHash)
	assert.True(t, user.SessionExpiresAt.Equal(byNickname.SessionExpiresAt))
	assert.False(t, byNickname.HasProviderCredentials())
	assert.Equal(t, byNickname, byID)
}

func TestUserRepository_CreateUser_DuplicateNickname(t *testing.T) {
	repos := newTestDB(t).Repositories()
	seedUser(t, repos, "alice")

	err := repos.Users.CreateUser(context.Background(), models.User{
		UserID:   "another-id",
		Nickname: "alice",
	})

	assert.ErrorIs(t, err, ErrNicknameAlreadyExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	repos := newTestDB(t).Repositories()
	ctx := context.Background()

	_, err := repos.Users.FindUserByNickname(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repos.Users.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = repos.Users.UpdateSessionExpiry(ctx, "missing", time.Now())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── Provider credentials ────────────────────────────────────────────────────

func TestUserRepository_ProviderCredentials(t *testing.T) {
	repos := newTestDB(t).Repositories()
	ctx := context.Background()
	user := seedUser(t, repos, "alice")

	secret := models.EncryptedSecret{Salt: "cw==", IV: "aQ==", CipherText: "Yw==", AuthTag: "dA=="}
	clientID := models.EncryptedSecret{Salt: "cA==", IV: "aA==", CipherText: "Yg==", AuthTag: "dQ=="}

	// Act: set
	require.NoError(t, repos.Users.SetProviderCredentials(ctx, user.UserID, secret, clientID))

	stored, err := repos.Users.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	require.True(t, stored.HasProviderCredentials())
	assert.Equal(t, secret, *stored.EncryptedAPISecret)
	assert.Equal(t, clientID, *stored.EncryptedAPIClientID)

	// Act: clear
	require.NoError(t, repos.Users.ClearProviderCredentials(ctx, user.UserID))

	stored, err = repos.Users.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.False(t, stored.HasProviderCredentials())
	assert.Nil(t, stored.EncryptedAPISecret)
	assert.Nil(t, stored.EncryptedAPIClientID)
}

func TestUserRepository_UpdateSessionExpiry(t *testing.T) {
	repos := newTestDB(t).Repositories()
	ctx := context.Background()
	user := seedUser(t, repos, "alice")

	next := time.Now().Add(720 * time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, repos.Users.UpdateSessionExpiry(ctx, user.UserID, next))

	stored, err := repos.Users.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.True(t, next.Equal(stored.SessionExpiresAt), "got %s", stored.SessionExpiresAt)
}

// ── Driver failures ─────────────────────────────────────────────────────────

func TestUserRepository_DriverErrorsWrapErrStorage(t *testing.T) {
	db, mock := newMockDB(t, nil)
	repos := db.Repositories()
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("disk I/O error"))
	err := repos.Users.CreateUser(ctx, models.User{UserID: "u1", Nickname: "alice"})
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrNicknameAlreadyExists)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("database disk image is malformed"))
	_, err = repos.Users.FindUserByNickname(ctx, "alice")
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewErrorResult(errors.New("rows unknown")))
	err = repos.Users.ClearProviderCredentials(ctx, "u1")
	assert.ErrorIs(t, err, ErrStorage)

	require.NoError(t, mock.ExpectationsWereMet())
}
