// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

func TestInTx_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db.Repositories(), "alice")
	seedLink(t, db.Repositories(), user.UserID, "link-a", time.Now())

	err := db.InTx(ctx, func(ctx context.Context, repos Repositories) error {
		if err := repos.Accounts.UpsertAccounts(ctx, models.Account{LinkID: "link-a", AccountID: "acc-1"}); err != nil {
			return err
		}
		return repos.Links.SetCursor(ctx, "link-a", "c-1")
	})
	require.NoError(t, err)

	cursor, err := db.Repositories().Links.GetCursor(ctx, "link-a")
	require.NoError(t, err)
	assert.Equal(t, "c-1", cursor)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db.Repositories(), "alice")
	seedLink(t, db.Repositories(), user.UserID, "link-a", time.Now())

	// Arrange: data is written, then the cursor write hits a missing link
	err := db.InTx(ctx, func(ctx context.Context, repos Repositories) error {
		if err := repos.Transactions.UpsertTransactions(ctx, "link-a", testTransaction("t1", "acc-1", "5", "2026-01-01")); err != nil {
			return err
		}
		return repos.Links.SetCursor(ctx, "removed-link", "c-1")
	})

	// Assert: nothing from the pass is visible
	require.ErrorIs(t, err, ErrLinkNotFound)
	n, err := db.Repositories().Transactions.CountTransactionsByLink(ctx, "link-a")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInTx_RetriesRetryableErrors(t *testing.T) {
	busy := errors.New("database is locked")
	db, mock := newMockDB(t, staticClassifier{marker: busy, class: Retryable})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settings").WillReturnError(busy)
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.InTx(context.Background(), func(ctx context.Context, repos Repositories) error {
		return repos.Settings.Set(ctx, SettingCurrentUserID, "u1")
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_GivesUpAfterMaxAttempts(t *testing.T) {
	busy := errors.New("database is locked")
	db, mock := newMockDB(t, staticClassifier{marker: busy, class: Retryable})

	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO settings").WillReturnError(busy)
		mock.ExpectRollback()
	}

	calls := 0
	err := db.InTx(context.Background(), func(ctx context.Context, repos Repositories) error {
		calls++
		return repos.Settings.Set(ctx, "k", "v")
	})

	require.ErrorIs(t, err, busy)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, maxTxAttempts, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t, nil)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := db.InTx(context.Background(), func(context.Context, Repositories) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestInTx_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t, nil)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("disk I/O error"))

	err := db.InTx(context.Background(), func(context.Context, Repositories) error { return nil })

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── Placeholders ────────────────────────────────────────────────────────────

func TestNewDB_PlaceholderFormatPerDriver(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
	}{
		{name: "sqlite", driver: config.DriverSQLite, query: "DELETE FROM settings WHERE key = ?"},
		{name: "postgres", driver: config.DriverPostgres, query: "DELETE FROM settings WHERE key = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { _ = conn.Close() })
			db := newDB(conn, tt.driver, staticClassifier{}, logger.Nop())

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(SettingCurrentUserID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err = db.Repositories().Settings.Delete(context.Background(), SettingCurrentUserID)

			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Settings ────────────────────────────────────────────────────────────────

func TestSettingsRepository(t *testing.T) {
	repos := newTestDB(t).Repositories()
	ctx := context.Background()

	_, err := repos.Settings.Get(ctx, SettingCurrentUserID)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, repos.Settings.Set(ctx, SettingCurrentUserID, "u1"))
	require.NoError(t, repos.Settings.Set(ctx, SettingCurrentUserID, "u2"))

	value, err := repos.Settings.Get(ctx, SettingCurrentUserID)
	require.NoError(t, err)
	assert.Equal(t, "u2", value)

	require.NoError(t, repos.Settings.Delete(ctx, SettingCurrentUserID))
	require.NoError(t, repos.Settings.Delete(ctx, SettingCurrentUserID))
	_, err = repos.Settings.Get(ctx, SettingCurrentUserID)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
