// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

// newTestDB opens a private in-memory SQLite database with the schema
// applied.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

// newMockDB returns a DB backed by sqlmock using the SQLite dialect.
func newMockDB(t *testing.T, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	if classifier == nil {
		classifier = NewSQLiteErrorClassifier()
	}
	return newDB(conn, config.DriverSQLite, classifier, logger.Nop()), mock
}

// staticClassifier classifies one marker error and nothing else.
type staticClassifier struct {
	marker error
	class  ErrorClassification
}

func (c staticClassifier) Classify(err error) ErrorClassification {
	if errors.Is(err, c.marker) {
		return c.class
	}
	return NonRetryable
}

func seedUser(t *testing.T, repos Repositories, nickname string) models.User {
	t.Helper()

	user := models.User{
		UserID:           uuid.NewString(),
		Nickname:         nickname,
		PasswordHash:     "$2a$10$hash",
		SessionExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		CreatedAt:        time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repos.Users.CreateUser(context.Background(), user))
	return user
}

func seedLink(t *testing.T, repos Repositories, userID, linkID string, createdAt time.Time) models.Link {
	t.Helper()

	link := models.Link{
		LinkID:       linkID,
		UserID:       userID,
		ItemID:       "item-" + linkID,
		FriendlyName: "Checking at " + linkID,
		EncryptedAccessToken: models.EncryptedSecret{
			Salt:       "c2FsdA==",
			IV:         "aXY=",
			CipherText: "Y2lwaGVy",
			AuthTag:    "dGFn",
		},
		InstitutionID:   "ins_1",
		InstitutionName: "First Platypus Bank",
		CreatedAt:       createdAt.UTC(),
	}
	require.NoError(t, repos.Links.AddLink(context.Background(), link))
	return link
}

func testTransaction(id, accountID, amount, date string) models.Transaction {
	return models.Transaction{
		TransactionID:  id,
		AccountID:      accountID,
		Amount:         decimal.RequireFromString(amount),
		CurrencyCode:   "USD",
		Date:           date,
		Name:           "Purchase " + id,
		PaymentChannel: "online",
	}
}
