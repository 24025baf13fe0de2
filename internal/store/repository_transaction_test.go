// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/openleaf/models"
)

func newLinkedRepos(t *testing.T) Repositories {
	t.Helper()
	repos := newTestDB(t).Repositories()
	user := seedUser(t, repos, "alice")
	seedLink(t, repos, user.UserID, "link-a", time.Now())
	return repos
}

// ── Transactions ────────────────────────────────────────────────────────────

func TestTransactionRepository_UpsertIsIdempotent(t *testing.T) {
	repos := newLinkedRepos(t)
	ctx := context.Background()

	batch := []models.Transaction{
		testTransaction("t1", "acc-1", "10.00", "2026-01-01"),
		testTransaction("t2", "acc-1", "-3.25", "2026-01-03"),
	}

	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a", batch...))
	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a", batch...))

	n, err := repos.Transactions.CountTransactionsByLink(ctx, "link-a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTransactionRepository_ModifyInPlace(t *testing.T) {
	repos := newLinkedRepos(t)
	ctx := context.Background()

	original := testTransaction("t1", "acc-1", "10.00", "2026-01-01")
	original.Pending = true
	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a", original))

	merchant := "Corner Cafe"
	modified := original
	modified.Amount = decimal.RequireFromString("11.75")
	modified.Pending = false
	modified.MerchantName = &merchant
	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a", modified))

	txs, err := repos.Transactions.ListTransactionsByAccount(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, decimal.RequireFromString("11.75").Equal(txs[0].Amount))
	assert.False(t, txs[0].Pending)
	require.NotNil(t, txs[0].MerchantName)
	assert.Equal(t, merchant, *txs[0].MerchantName)
}

func TestTransactionRepository_LastVersionWins(t *testing.T) {
	repos := newLinkedRepos(t)
	ctx := context.Background()

	first := testTransaction("t1", "acc-1", "1.00", "2026-01-01")
	last := testTransaction("t1", "acc-1", "2.00", "2026-01-01")

	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a", first, last))

	txs, err := repos.Transactions.ListTransactionsByAccount(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "2", txs[0].Amount.String())
}

func TestTransactionRepository_LargeBatch(t *testing.T) {
	repos := newLinkedRepos(t)
	ctx := context.Background()

	const total = batchSize*3 + 7
	txs := make([]models.Transaction, 0, total)
	ids := make([]string, 0, total)
	for i := range total {
		id := fmt.Sprintf("t%03d", i)
		txs = append(txs, testTransaction(id, "acc-1", "1.00", "2026-02-01"))
		ids = append(ids, id)
	}

	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a", txs...))
	n, err := repos.Transactions.CountTransactionsByLink(ctx, "link-a")
	require.NoError(t, err)
	assert.Equal(t, total, n)

	require.NoError(t, repos.Transactions.DeleteTransactions(ctx, ids...))
	n, err = repos.Transactions.CountTransactionsByLink(ctx, "link-a")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransactionRepository_DeleteIgnoresUnknownIDs(t *testing.T) {
	repos := newLinkedRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a",
		testTransaction("t1", "acc-1", "1.00", "2026-01-01"),
		testTransaction("t2", "acc-1", "2.00", "2026-01-02"),
	))

	require.NoError(t, repos.Transactions.DeleteTransactions(ctx, "t1", "never-seen"))
	require.NoError(t, repos.Transactions.DeleteTransactions(ctx))

	txs, err := repos.Transactions.ListTransactionsByAccount(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "t2", txs[0].TransactionID)
}

func TestTransactionRepository_ListOrder(t *testing.T) {
	repos := newLinkedRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Transactions.UpsertTransactions(ctx, "link-a",
		testTransaction("b", "acc-1", "1.00", "2026-01-05"),
		testTransaction("a", "acc-1", "1.00", "2026-01-05"),
		testTransaction("c", "acc-1", "1.00", "2026-03-01"),
		testTransaction("d", "acc-2", "1.00", "2026-04-01"),
	))

	txs, err := repos.Transactions.ListTransactionsByAccount(ctx, "acc-1")
	require.NoError(t, err)

	var ids []string
	for _, tx := range txs {
		ids = append(ids, tx.TransactionID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestTransactionRepository_DriverError(t *testing.T) {
	db, mock := newMockDB(t, nil)
	repos := db.Repositories()

	mock.ExpectExec("INSERT INTO transactions").WillReturnError(errors.New("disk full"))

	err := repos.Transactions.UpsertTransactions(context.Background(), "link-a",
		testTransaction("t1", "acc-1", "1.00", "2026-01-01"))

	assert.ErrorIs(t, err, ErrStorage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDedupeTransactions(t *testing.T) {
	in := []models.Transaction{
		testTransaction("a", "acc", "1", "2026-01-01"),
		testTransaction("b", "acc", "2", "2026-01-01"),
		testTransaction("a", "acc", "3", "2026-01-01"),
	}

	out := dedupeTransactions(in)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].TransactionID)
	assert.Equal(t, "3", out[0].Amount.String())
	assert.Equal(t, "b", out[1].TransactionID)
}

// ── Accounts ────────────────────────────────────────────────────────────────

func TestAccountRepository_UpsertAndList(t *testing.T) {
	repos := newLinkedRepos(t)
	ctx := context.Background()

	checking := models.Account{
		LinkID:    "link-a",
		AccountID: "acc-1",
		Name:      "Checking",
		Type:      "depository",
		Mask:      "0000",
		Balances: models.Balances{
			Current:         decimal.NewNullDecimal(decimal.RequireFromString("110.25")),
			ISOCurrencyCode: "USD",
		},
	}
	require.NoError(t, repos.Accounts.UpsertAccounts(ctx, checking))

	checking.Balances.Available = decimal.NewNullDecimal(decimal.RequireFromString("100"))
	require.NoError(t, repos.Accounts.UpsertAccounts(ctx, checking,
		models.Account{LinkID: "link-a", AccountID: "acc-2", Name: "Savings"}))
	require.NoError(t, repos.Accounts.UpsertAccounts(ctx))

	byLink, err := repos.Accounts.ListAccountsByLink(ctx, "link-a")
	require.NoError(t, err)
	user, err := repos.Users.FindUserByNickname(ctx, "alice")
	require.NoError(t, err)
	byUser, err := repos.Accounts.ListAccountsByUser(ctx, user.UserID)
	require.NoError(t, err)

	require.Len(t, byLink, 2)
	assert.Equal(t, "Checking", byLink[0].Name)
	assert.True(t, byLink[0].Balances.Available.Valid)
	assert.Equal(t, "100", byLink[0].Balances.Available.Decimal.String())
	assert.Equal(t, "110.25", byLink[0].Balances.Current.Decimal.String())
	assert.False(t, byLink[0].Balances.Limit.Valid)
	assert.Equal(t, byLink, byUser)

	require.NoError(t, repos.Accounts.DeleteAccountsByLink(ctx, "link-a"))
	byLink, err = repos.Accounts.ListAccountsByLink(ctx, "link-a")
	require.NoError(t, err)
	assert.Empty(t, byLink)
}
