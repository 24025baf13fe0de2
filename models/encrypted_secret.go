// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// EncryptedSecret is a password-sealed envelope produced by the crypto vault.
//
// All fields are base64 (standard encoding) strings so the envelope can be
// serialized as JSON text and stored in a single column. An envelope is
// immutable: encrypting a new value always yields a new envelope with a
// fresh salt and IV.
type EncryptedSecret struct {
	// Salt is the random KDF salt used to derive the AES key from the password.
	Salt string `json:"salt"`

	// IV is the random GCM nonce.
	IV string `json:"iv"`

	// CipherText is the AES-GCM output without the authentication tag.
	CipherText string `json:"cipherText"`

	// AuthTag is the detached GCM authentication tag.
	AuthTag string `json:"authTag"`
}

// IsZero reports whether the envelope carries no data at all.
func (s EncryptedSecret) IsZero() bool {
	return s.Salt == "" && s.IV == "" && s.CipherText == "" && s.AuthTag == ""
}

// Encode serializes the envelope into the JSON text form used at rest.
func (s EncryptedSecret) Encode() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode encrypted secret: %w", err)
	}
	return string(raw), nil
}

// DecodeEncryptedSecret parses the JSON text produced by [EncryptedSecret.Encode].
func DecodeEncryptedSecret(text string) (EncryptedSecret, error) {
	var s EncryptedSecret
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return EncryptedSecret{}, fmt.Errorf("decode encrypted secret: %w", err)
	}
	return s, nil
}
