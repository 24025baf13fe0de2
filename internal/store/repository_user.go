// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/models"
)

var userColumns = []string{
	"user_id",
	"nickname",
	"password_hash",
	"session_expires_at",
	"created_at",
	"encrypted_api_secret",
	"encrypted_api_client_id",
}

// userRepository is the SQL implementation of [UserRepository].
type userRepository struct {
	querier
}

// CreateUser implements [UserRepository].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	secret, err := encodeOptionalSecret(user.EncryptedAPISecret)
	if err != nil {
		return storageErr("encode api secret", err)
	}
	clientID, err := encodeOptionalSecret(user.EncryptedAPIClientID)
	if err != nil {
		return storageErr("encode api client id", err)
	}

	query, args, err := r.sb.Insert("users").
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Nickname,
			user.PasswordHash,
			user.SessionExpiresAt.UTC(),
			user.CreatedAt.UTC(),
			secret,
			clientID,
		).
		ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.classifier.Classify(err) == Conflict {
			return ErrNicknameAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to insert user")
		return storageErr("failed to create user", err)
	}

	return nil
}

// GetUser implements [UserRepository].
func (r *userRepository) GetUser(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "userRepository.GetUser", sq.Eq{"user_id": userID})
}

// FindUserByNickname implements [UserRepository].
func (r *userRepository) FindUserByNickname(ctx context.Context, nickname string) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindUserByNickname", sq.Eq{"nickname": nickname})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return models.User{}, storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	var (
		user     models.User
		secret   sql.NullString
		clientID sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Nickname,
		&user.PasswordHash,
		&user.SessionExpiresAt,
		&user.CreatedAt,
		&secret,
		&clientID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query user")
		return models.User{}, storageErr("failed to query user", err)
	}

	if user.EncryptedAPISecret, err = decodeOptionalSecret(secret); err != nil {
		return models.User{}, storageErr("decode api secret", err)
	}
	if user.EncryptedAPIClientID, err = decodeOptionalSecret(clientID); err != nil {
		return models.User{}, storageErr("decode api client id", err)
	}

	return user, nil
}

// UpdateSessionExpiry implements [UserRepository].
func (r *userRepository) UpdateSessionExpiry(ctx context.Context, userID string, expiresAt time.Time) error {
	return r.update(ctx, "userRepository.UpdateSessionExpiry", userID, map[string]any{"session_expires_at": expiresAt.UTC()})
}

// SetProviderCredentials implements [UserRepository].
func (r *userRepository) SetProviderCredentials(ctx context.Context, userID string, secret, clientID models.EncryptedSecret) error {
	encodedSecret, err := secret.Encode()
	if err != nil {
		return storageErr("encode api secret", err)
	}
	encodedClientID, err := clientID.Encode()
	if err != nil {
		return storageErr("encode api client id", err)
	}

	return r.update(ctx, "userRepository.SetProviderCredentials", userID, map[string]any{
		"encrypted_api_secret":    encodedSecret,
		"encrypted_api_client_id": encodedClientID,
	})
}

// ClearProviderCredentials implements [UserRepository].
func (r *userRepository) ClearProviderCredentials(ctx context.Context, userID string) error {
	return r.update(ctx, "userRepository.ClearProviderCredentials", userID, map[string]any{
		"encrypted_api_secret":    nil,
		"encrypted_api_client_id": nil,
	})
}

func (r *userRepository) update(ctx context.Context, funcName, userID string, values map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Update("users").
		SetMap(values).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return storageErr(ErrBuildingSQLQuery.Error(), err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to update user")
		return storageErr("failed to update user", err)
	}

	return expectAffected(res, ErrUserNotFound)
}

func encodeOptionalSecret(secret *models.EncryptedSecret) (sql.NullString, error) {
	if secret == nil {
		return sql.NullString{}, nil
	}
	text, err := secret.Encode()
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: text, Valid: true}, nil
}

func decodeOptionalSecret(text sql.NullString) (*models.EncryptedSecret, error) {
	if !text.Valid || text.String == "" {
		return nil, nil
	}
	secret, err := models.DecodeEncryptedSecret(text.String)
	if err != nil {
		return nil, err
	}
	return &secret, nil
}

// expectAffected reports notFound when a statement matched no rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("failed to read affected rows", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
