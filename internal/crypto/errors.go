// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when an envelope cannot be opened:
	// wrong password, corrupted fields, or a failed authentication tag.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPasswordMismatch is returned when a password does not match its hash.
	ErrPasswordMismatch = errors.New("password does not match")
)
