// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the single local profile of the desktop client.
//
// PasswordHash is a bcrypt hash of the master password; the master password
// itself is never stored. The provider credentials are sealed with the
// master password and are nil until the aggregation provider is set up.
type User struct {
	// UserID is the generated identifier of the profile.
	UserID string `json:"user_id"`

	// Nickname is the unique login name.
	Nickname string `json:"nickname"`

	// PasswordHash is the bcrypt hash of the master password.
	PasswordHash string `json:"-"`

	// SessionExpiresAt is refreshed on every successful login.
	SessionExpiresAt time.Time `json:"session_expires_at"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`

	// EncryptedAPISecret is the sealed aggregation provider secret.
	EncryptedAPISecret *EncryptedSecret `json:"-"`

	// EncryptedAPIClientID is the sealed aggregation provider client id.
	EncryptedAPIClientID *EncryptedSecret `json:"-"`
}

// HasProviderCredentials reports whether both provider fields are present.
func (u User) HasProviderCredentials() bool {
	return u.EncryptedAPISecret != nil && u.EncryptedAPIClientID != nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
