// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/openleaf/internal/logger"
)

// SettingCurrentUserID holds the id of the profile that logged in last.
const SettingCurrentUserID = "current_user_id"

type settingsRepository struct {
	querier
}

// Get implements [SettingsRepository].
func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := r.sb.Select("value").From("settings").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.Get").Str("key", key).Msg("failed to read setting")
		return "", storageErr("failed to read setting", err)
	}

	return value, nil
}

// Set implements [SettingsRepository].
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := r.sb.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.Set").Str("key", key).Msg("failed to write setting")
		return storageErr("failed to write setting", err)
	}

	return nil
}

// Delete implements [SettingsRepository].
func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	query, args, err := r.sb.Delete("settings").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.Delete").Str("key", key).Msg("failed to delete setting")
		return storageErr("failed to delete setting", err)
	}

	return nil
}
