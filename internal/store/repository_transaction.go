// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

// batchSize bounds the rows of one multi-row statement so the bound
// parameters stay below the SQLite variable limit.
const batchSize = 50

var transactionColumns = []string{
	"transaction_id",
	"link_id",
	"account_id",
	"amount",
	"currency_code",
	"date",
	"name",
	"merchant_name",
	"pending",
	"payment_channel",
}

type transactionRepository struct {
	querier
}

// UpsertTransactions implements [TransactionRepository]. When the same id
// appears more than once, the last occurrence wins.
func (r *transactionRepository) UpsertTransactions(ctx context.Context, linkID string, txs ...models.Transaction) error {
	log := logger.FromContext(ctx)

	unique := dedupeTransactions(txs)
	for start := 0; start < len(unique); start += batchSize {
		end := min(start+batchSize, len(unique))

		insert := r.sb.Insert("transactions").Columns(transactionColumns...)
		for _, t := range unique[start:end] {
			var merchant sql.NullString
			if t.MerchantName != nil {
				merchant = sql.NullString{String: *t.MerchantName, Valid: true}
			}
			insert = insert.Values(
				t.TransactionID,
				linkID,
				t.AccountID,
				t.Amount.String(),
				t.CurrencyCode,
				t.Date,
				t.Name,
				merchant,
				t.Pending,
				t.PaymentChannel,
			)
		}

		query, args, err := insert.Suffix(`ON CONFLICT (transaction_id) DO UPDATE SET
			link_id = excluded.link_id,
			account_id = excluded.account_id,
			amount = excluded.amount,
			currency_code = excluded.currency_code,
			date = excluded.date,
			name = excluded.name,
			merchant_name = excluded.merchant_name,
			pending = excluded.pending,
			payment_channel = excluded.payment_channel`).
			ToSql()
		if err != nil {
			return storageErr(ErrBuildingSQLQuery.Error(), err)
		}

		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "transactionRepository.UpsertTransactions").Str("link_id", linkID).Msg("failed to upsert transactions")
			return storageErr("failed to upsert transactions", err)
		}
	}

	return nil
}

// DeleteTransactions implements [TransactionRepository].
func (r *transactionRepository) DeleteTransactions(ctx context.Context, transactionIDs ...string) error {
	for start := 0; start < len(transactionIDs); start += batchSize {
		end := min(start+batchSize, len(transactionIDs))

		query, args, err := r.sb.Delete("transactions").
			Where(sq.Eq{"transaction_id": transactionIDs[start:end]}).
			ToSql()
		if err != nil {
			return storageErr(ErrBuildingSQLQuery.Error(), err)
		}

		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "transactionRepository.DeleteTransactions").Msg("failed to delete transactions")
			return storageErr("failed to delete transactions", err)
		}
	}

	return nil
}

// DeleteTransactionsByLink implements [TransactionRepository].
func (r *transactionRepository) DeleteTransactionsByLink(ctx context.Context, linkID string) error {
	query, args, err := r.sb.Delete("transactions").Where(sq.Eq{"link_id": linkID}).ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "transactionRepository.DeleteTransactionsByLink").Str("link_id", linkID).Msg("failed to delete transactions")
		return storageErr("failed to delete transactions", err)
	}

	return nil
}

// ListTransactionsByAccount implements [TransactionRepository]. The newest
// transactions come first.
func (r *transactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("date DESC", "transaction_id").
		ToSql()
	if err != nil {
		return nil, storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.ListTransactionsByAccount").Str("account_id", accountID).Msg("failed to query transactions")
		return nil, storageErr("failed to query transactions", err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		var (
			t        models.Transaction
			linkID   string
			merchant sql.NullString
		)
		err := rows.Scan(
			&t.TransactionID,
			&linkID,
			&t.AccountID,
			&t.Amount,
			&t.CurrencyCode,
			&t.Date,
			&t.Name,
			&merchant,
			&t.Pending,
			&t.PaymentChannel,
		)
		if err != nil {
			log.Err(err).Str("func", "transactionRepository.ListTransactionsByAccount").Msg("failed to scan transaction row")
			return nil, storageErr(ErrScanningRow.Error(), err)
		}
		if merchant.Valid {
			t.MerchantName = &merchant.String
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrScanningRow.Error(), err)
	}

	return txs, nil
}

// CountTransactionsByLink implements [TransactionRepository].
func (r *transactionRepository) CountTransactionsByLink(ctx context.Context, linkID string) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("transactions").Where(sq.Eq{"link_id": linkID}).ToSql()
	if err != nil {
		return 0, storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "transactionRepository.CountTransactionsByLink").Str("link_id", linkID).Msg("failed to count transactions")
		return 0, storageErr("failed to count transactions", err)
	}

	return n, nil
}

// dedupeTransactions keeps the last version of every transaction id while
// preserving the order of first appearance.
func dedupeTransactions(txs []models.Transaction) []models.Transaction {
	index := make(map[string]int, len(txs))
	unique := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if i, ok := index[t.TransactionID]; ok {
			unique[i] = t
			continue
		}
		index[t.TransactionID] = len(unique)
		unique = append(unique, t)
	}
	return unique
}
