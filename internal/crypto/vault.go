// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/openleaf/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 round count used in production.
	// Configuration may raise it but never lower it.
	DefaultIterations = 100_000

	keyLength  = 32 // AES-256
	saltLength = 16
	ivLength   = 16
	tagLength  = 16
)

// vault is the private implementation of [Vault].
type vault struct {
	iterations int
	random     io.Reader
}

// VaultOption customizes a [Vault] at construction time.
type VaultOption func(*vault)

// WithIterations overrides the PBKDF2 round count.
func WithIterations(n int) VaultOption {
	return func(v *vault) {
		if n > 0 {
			v.iterations = n
		}
	}
}

// WithRandom replaces the source of salts and IVs. It exists for tests
// that need to observe a failing entropy source.
func WithRandom(r io.Reader) VaultOption {
	return func(v *vault) {
		v.random = r
	}
}

// NewVault constructs a [Vault] using PBKDF2-HMAC-SHA512 with
// [DefaultIterations] rounds and AES-256-GCM with a 16-byte IV.
func NewVault(opts ...VaultOption) Vault {
	v := &vault{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Encrypt implements [Vault].
func (v *vault) Encrypt(plaintext, password string) (models.EncryptedSecret, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(v.random, salt); err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(v.random, iv); err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := v.newGCM(password, salt)
	if err != nil {
		return models.EncryptedSecret{}, err
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	cipherText, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	return models.EncryptedSecret{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		CipherText: base64.StdEncoding.EncodeToString(cipherText),
		AuthTag:    base64.StdEncoding.EncodeToString(tag),
	}, nil
}

// Decrypt implements [Vault]. Every failure is reported as
// [ErrDecryptionFailed] so callers cannot tell a wrong password from a
// damaged envelope.
func (v *vault) Decrypt(secret models.EncryptedSecret, password string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(secret.Salt)
	if err != nil || len(salt) != saltLength {
		return "", fmt.Errorf("%w: malformed salt", ErrDecryptionFailed)
	}

	iv, err := base64.StdEncoding.DecodeString(secret.IV)
	if err != nil || len(iv) != ivLength {
		return "", fmt.Errorf("%w: malformed iv", ErrDecryptionFailed)
	}

	cipherText, err := base64.StdEncoding.DecodeString(secret.CipherText)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}

	tag, err := base64.StdEncoding.DecodeString(secret.AuthTag)
	if err != nil || len(tag) != tagLength {
		return "", fmt.Errorf("%w: malformed auth tag", ErrDecryptionFailed)
	}

	gcm, err := v.newGCM(password, salt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	sealed := make([]byte, 0, len(cipherText)+len(tag))
	sealed = append(sealed, cipherText...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}

func (v *vault) newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, v.iterations, keyLength, sha512.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
