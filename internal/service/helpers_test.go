// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/crypto"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/mock"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/internal/utils"
	"github.com/MKhiriev/openleaf/internal/validators"
	"github.com/MKhiriev/openleaf/models"
)

const testPassword = "Secret123!"

// testEnv wires the real services over an in-memory SQLite database and a
// mocked aggregation gateway.
type testEnv struct {
	storages *store.ClientStorages
	gateway  *mock.MockAggregatorAdapter
	session  *Session
	vault    crypto.Vault

	auth  *authService
	links *linkService
	sync  *syncService
	data  DataService
}

func testSyncConfig() config.Sync {
	return config.Sync{
		PageSize:          100,
		MaxRestarts:       2,
		ReadyPollInterval: time.Millisecond,
		ReadyTimeout:      50 * time.Millisecond,
	}
}

func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}}
	storages, err := store.NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	gateway := mock.NewMockAggregatorAdapter(ctrl)
	session := NewSession()
	vault := crypto.NewVault(crypto.WithIterations(1000))
	hasher := crypto.NewPasswordHasher(4)
	validator := validators.NewStructValidator()
	ids := utils.NewUUIDGenerator()
	log := logger.Nop()

	syncSvc := NewSyncService(storages.Repositories, storages.DB, gateway, session, testSyncConfig(), log).(*syncService)

	return &testEnv{
		storages: storages,
		gateway:  gateway,
		session:  session,
		vault:    vault,
		auth: NewAuthService(storages.Repositories, hasher, validator, ids, gateway, session,
			config.App{SessionTTL: time.Hour}, log).(*authService),
		links: NewLinkService(storages.Repositories, storages.DB, vault, hasher, validator, ids,
			gateway, session, syncSvc, log).(*linkService),
		sync: syncSvc,
		data: NewDataService(storages.Repositories, session, log),
	}
}

// login registers nickname and opens a session for it.
func (e *testEnv) login(t *testing.T, nickname string) models.User {
	t.Helper()

	ctx := context.Background()
	_, err := e.auth.Register(ctx, nickname, testPassword)
	require.NoError(t, err)
	e.gateway.EXPECT().ClearCredentials()
	user, err := e.auth.Login(ctx, nickname, testPassword)
	require.NoError(t, err)
	return user
}

// withProvider stores provider credentials for the logged-in user.
func (e *testEnv) withProvider(t *testing.T) {
	t.Helper()

	e.gateway.EXPECT().SetCredentials("cid", "sek")
	err := e.links.RegisterProvider(context.Background(), testPassword,
		models.ProviderCredentials{ClientID: "cid", Secret: "sek"})
	require.NoError(t, err)
}

// addLink stores a link sealed under password and registers its token in
// the session.
func (e *testEnv) addLink(t *testing.T, userID, linkID, token, password string) models.Link {
	t.Helper()

	sealed, err := e.vault.Encrypt(token, password)
	require.NoError(t, err)

	link := models.Link{
		LinkID:               linkID,
		UserID:               userID,
		ItemID:               "item-" + linkID,
		FriendlyName:         "Checking " + linkID,
		EncryptedAccessToken: sealed,
		InstitutionID:        "ins_1",
		InstitutionName:      "First Platypus Bank",
		CreatedAt:            time.Now().UTC(),
	}
	require.NoError(t, e.storages.Links.AddLink(context.Background(), link))
	e.session.SetToken(linkID, token)
	return link
}

func (e *testEnv) cursor(t *testing.T, linkID string) string {
	t.Helper()

	cursor, err := e.storages.Links.GetCursor(context.Background(), linkID)
	require.NoError(t, err)
	return cursor
}

func (e *testEnv) countTransactions(t *testing.T, linkID string) int {
	t.Helper()

	n, err := e.storages.Transactions.CountTransactionsByLink(context.Background(), linkID)
	require.NoError(t, err)
	return n
}

func tx(id, amount string) models.Transaction {
	return models.Transaction{
		TransactionID:  id,
		AccountID:      "acc-1",
		Amount:         decimal.RequireFromString(amount),
		CurrencyCode:   "USD",
		Date:           "2026-03-01",
		Name:           "Purchase " + id,
		PaymentChannel: "online",
	}
}

func snapshot(itemID string) models.AccountsSnapshot {
	return models.AccountsSnapshot{
		ItemID:        itemID,
		InstitutionID: "ins_3",
		Accounts: []models.Account{{
			AccountID: "acc-1",
			Name:      "Plaid Checking",
			Type:      "depository",
			Subtype:   "checking",
			Mask:      "0000",
			Balances: models.Balances{
				Current:         decimal.NewNullDecimal(decimal.RequireFromString("110.00")),
				ISOCurrencyCode: "USD",
			},
		}},
	}
}

func mutationErr() error {
	return &adapter.ProviderError{
		StatusCode: 400,
		Type:       "TRANSACTIONS_ERROR",
		Code:       adapter.CodeMutationDuringPagination,
		Message:    "underlying transaction data changed",
	}
}

func transientErr() error {
	return fmt.Errorf("%w: connection reset", adapter.ErrTransient)
}
