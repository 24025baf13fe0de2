// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrInvalidToken is returned by Authenticate for a session token that is
// malformed, expired or signed by another process.
var ErrInvalidToken = errors.New("token is expired or invalid")
