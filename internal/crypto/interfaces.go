// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/openleaf/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Vault is the only place in the client that encrypts or decrypts secrets.
// It knows nothing about storage, the network, or users.
//
// Scheme:
//
//	salt, iv  = random(16), random(16)
//	key       = PBKDF2-HMAC-SHA512(password, salt, iterations, 32)
//	ct || tag = AES-256-GCM(key, iv, plaintext)
//	envelope  = {salt, iv, ct, tag} (base64)
//
// Key derivation is deliberately slow; callers must treat both methods as
// blocking operations.
type Vault interface {
	// Encrypt seals plaintext under password. Every call produces a new
	// envelope with a fresh salt and IV, so two encryptions of the same
	// inputs are never equal.
	Encrypt(plaintext, password string) (models.EncryptedSecret, error)

	// Decrypt re-derives the key from the stored salt and password and
	// opens the envelope. A wrong password, a malformed envelope, or a
	// tampered ciphertext/tag all yield [ErrDecryptionFailed] and an empty
	// string, never partial plaintext.
	Decrypt(secret models.EncryptedSecret, password string) (string, error)
}

// PasswordHasher produces and verifies slow salted one-way hashes of the
// master password. The hash is used only for authentication.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)

	// Compare returns nil if password matches hash and [ErrPasswordMismatch]
	// if it does not. Any other error means the hash itself is unusable.
	Compare(hash, password string) error
}
