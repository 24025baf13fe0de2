// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Link is a persisted association between the local user and one linked
// financial institution.
//
// The access token behind a link is stored only as EncryptedAccessToken.
// SyncCursor is owned by the sync engine and is empty until the first
// successful sync pass.
type Link struct {
	LinkID               string          `json:"link_id"`
	UserID               string          `json:"-"`
	ItemID               string          `json:"item_id"`
	FriendlyName         string          `json:"friendly_name"`
	EncryptedAccessToken EncryptedSecret `json:"-"`
	InstitutionID        string          `json:"institution_id"`
	InstitutionName      string          `json:"institution_name"`
	SyncCursor           string          `json:"-"`
	CreatedAt            time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Link model.
func (l Link) TableName() string {
	return "links"
}

// LinkSummary is the read model of a link shown to the UI.
type LinkSummary struct {
	LinkID          string    `json:"link_id"`
	FriendlyName    string    `json:"friendly_name"`
	InstitutionID   string    `json:"institution_id"`
	InstitutionName string    `json:"institution_name"`
	CreatedAt       time.Time `json:"created_at"`

	// Synced reports whether a sync cursor has been committed for the link.
	Synced bool `json:"synced"`

	// Unlocked reports whether the active session holds the decrypted
	// access token. A stored link whose token failed to decrypt stays locked.
	Unlocked bool `json:"unlocked"`
}
