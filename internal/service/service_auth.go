// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/crypto"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/internal/validators"
	"github.com/MKhiriev/openleaf/models"
)

// idGenerator produces identifiers for new users and links.
type idGenerator interface {
	Generate() string
}

// credentialsInput is the validated shape of register and login arguments.
type credentialsInput struct {
	Nickname string `json:"nickname" validate:"required,nickname"`
	Password string `json:"password" validate:"required,notblank_secret"`
}

// authService is the concrete implementation of AuthService.
type authService struct {
	users    store.UserRepository
	settings store.SettingsRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       idGenerator

	// gateway forgets its credentials on logout.
	gateway adapter.AggregatorAdapter
	session *Session

	// sessionTTL is added to the login time to compute the session expiry.
	sessionTTL time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the pool-level repositories.
func NewAuthService(
	repos store.Repositories,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	ids idGenerator,
	gateway adapter.AggregatorAdapter,
	session *Session,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:      repos.Users,
		settings:   repos.Settings,
		hasher:     hasher,
		validator:  validator,
		ids:        ids,
		gateway:    gateway,
		session:    session,
		sessionTTL: cfg.SessionTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// Register implements AuthService.
func (a *authService) Register(ctx context.Context, nickname, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	input := credentialsInput{Nickname: nickname, Password: password}
	if err := a.validator.Validate(ctx, input); err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash master password: %w", err)
	}

	now := a.now().UTC()
	user := models.User{
		UserID:           a.ids.Generate(),
		Nickname:         nickname,
		PasswordHash:     hash,
		SessionExpiresAt: now.Add(a.sessionTTL),
		CreatedAt:        now,
	}

	if err = a.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrNicknameAlreadyExists) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.settings.Set(ctx, store.SettingCurrentUserID, user.UserID); err != nil {
		return models.User{}, fmt.Errorf("record current user: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login implements AuthService.
func (a *authService) Login(ctx context.Context, nickname, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if nickname == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	user, err := a.users.FindUserByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by nickname failed")
		return models.User{}, fmt.Errorf("user search by nickname failed: %w", err)
	}

	if err = verifyPassword(a.hasher, user, password); err != nil {
		log.Warn().Err(err).Str("user_id", user.UserID).Msg("login rejected")
		return models.User{}, err
	}

	user.SessionExpiresAt = a.now().UTC().Add(a.sessionTTL)
	if err = a.users.UpdateSessionExpiry(ctx, user.UserID, user.SessionExpiresAt); err != nil {
		return models.User{}, fmt.Errorf("refresh session expiry: %w", err)
	}
	if err = a.settings.Set(ctx, store.SettingCurrentUserID, user.UserID); err != nil {
		return models.User{}, fmt.Errorf("record current user: %w", err)
	}

	// credentials of the previous session must not serve the new user
	a.gateway.ClearCredentials()
	a.session.Open(user)

	log.Info().Str("user_id", user.UserID).Time("expires_at", user.SessionExpiresAt).Msg("session opened")
	return user, nil
}

// Logout implements AuthService.
func (a *authService) Logout(ctx context.Context) {
	a.session.Close()
	a.gateway.ClearCredentials()
	logger.FromContext(ctx).Info().Msg("session closed")
}

// CurrentUser implements AuthService.
func (a *authService) CurrentUser(_ context.Context) (models.User, error) {
	user, ok := a.session.User()
	if !ok {
		return models.User{}, ErrNotLoggedIn
	}
	return user, nil
}

// LastUser implements AuthService.
func (a *authService) LastUser(ctx context.Context) (models.User, error) {
	userID, err := a.settings.Get(ctx, store.SettingCurrentUserID)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("read current user: %w", err)
	}

	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load current user: %w", err)
	}
	return user, nil
}

// verifyPassword maps a hash mismatch to ErrWrongPassword.
func verifyPassword(hasher crypto.PasswordHasher, user models.User, password string) error {
	err := hasher.Compare(user.PasswordHash, password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrPasswordMismatch):
		return ErrWrongPassword
	default:
		return fmt.Errorf("verify master password: %w", err)
	}
}
