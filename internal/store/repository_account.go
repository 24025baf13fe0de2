// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

var accountColumns = []string{
	"link_id",
	"account_id",
	"name",
	"official_name",
	"type",
	"subtype",
	"mask",
	"balances",
}

type accountRepository struct {
	querier
}

// UpsertAccounts implements [AccountRepository]. Existing accounts keep
// their key and get every other column overwritten.
func (r *accountRepository) UpsertAccounts(ctx context.Context, accounts ...models.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	insert := r.sb.Insert("accounts").Columns(accountColumns...)
	for _, a := range accounts {
		balances, err := json.Marshal(a.Balances)
		if err != nil {
			return storageErr("encode balances", err)
		}
		insert = insert.Values(a.LinkID, a.AccountID, a.Name, a.OfficialName, a.Type, a.Subtype, a.Mask, string(balances))
	}

	query, args, err := insert.Suffix(`ON CONFLICT (link_id, account_id) DO UPDATE SET
		name = excluded.name,
		official_name = excluded.official_name,
		type = excluded.type,
		subtype = excluded.subtype,
		mask = excluded.mask,
		balances = excluded.balances`).
		ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "accountRepository.UpsertAccounts").Int("count", len(accounts)).Msg("failed to upsert accounts")
		return storageErr("failed to upsert accounts", err)
	}

	return nil
}

// ListAccountsByUser implements [AccountRepository].
func (r *accountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]models.Account, error) {
	cols := make([]string, len(accountColumns))
	for i, c := range accountColumns {
		cols[i] = "a." + c
	}

	return r.list(ctx, "accountRepository.ListAccountsByUser", r.sb.Select(cols...).
		From("accounts a").
		Join("links l ON l.link_id = a.link_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.created_at", "a.link_id", "a.name", "a.account_id"))
}

// ListAccountsByLink implements [AccountRepository].
func (r *accountRepository) ListAccountsByLink(ctx context.Context, linkID string) ([]models.Account, error) {
	return r.list(ctx, "accountRepository.ListAccountsByLink", r.sb.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"link_id": linkID}).
		OrderBy("name", "account_id"))
}

// DeleteAccountsByLink implements [AccountRepository].
func (r *accountRepository) DeleteAccountsByLink(ctx context.Context, linkID string) error {
	query, args, err := r.sb.Delete("accounts").Where(sq.Eq{"link_id": linkID}).ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.DeleteAccountsByLink").Str("link_id", linkID).Msg("failed to delete accounts")
		return storageErr("failed to delete accounts", err)
	}

	return nil
}

func (r *accountRepository) list(ctx context.Context, funcName string, b sq.SelectBuilder) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query accounts")
		return nil, storageErr("failed to query accounts", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var (
			a        models.Account
			balances string
		)
		if err := rows.Scan(&a.LinkID, &a.AccountID, &a.Name, &a.OfficialName, &a.Type, &a.Subtype, &a.Mask, &balances); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan account row")
			return nil, storageErr(ErrScanningRow.Error(), err)
		}
		if err := json.Unmarshal([]byte(balances), &a.Balances); err != nil {
			return nil, storageErr("decode balances", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrScanningRow.Error(), err)
	}

	return accounts, nil
}
